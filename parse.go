package tracecalc

// Expr = num | Neg | Add | Sub | Mul | Div | '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Expr is a parsed expression. The zero Expr, or one parsed from no tokens,
// is empty and evaluates to 0.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// src is the text the expression was parsed from.
	src string
}

// pending is an entry on the operator stack: either an operator or the marker
// left by an open bracket, which has op OpNone.
type pending struct {
	op  Op
	tok Token
}

// parser holds the two stacks of the shunting-yard algorithm.
type parser struct {
	src string
	out []*node
	ops []pending
}

// Parse tokenizes src and parses the result.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(src, toks)
}

// ParseTokens parses a token sequence as produced by Tokenize. src is the text
// the tokens were scanned from; it is used for spans and error positions and
// may be empty. Whitespace tokens are ignored, and an EOF token ends the
// sequence early. If toks contains no other tokens, the result is an empty
// Expr.
func ParseTokens(src string, toks []Token) (*Expr, error) {
	p := parser{src: src}
	// operand is whether the next token must begin an operand. It starts true
	// and is true after an open bracket or any operator.
	operand := true
	var prev *Token
	for i := range toks {
		tok := &toks[i]
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenEOF:
			return p.finish(operand, prev)
		case TokenInvalid:
			return nil, &LexError{Col: p.col(tok.Span), Span: tok.Span}
		case TokenNum:
			if !operand {
				return nil, p.operandError(tok, "operator", false)
			}
			p.out = append(p.out, &node{val: tok.Value, span: tok.Span})
			operand = false
		case TokenPlus, TokenMinus, TokenAsterisk, TokenSlash:
			if operand {
				// Prefix operator. It binds tightest and associates to the
				// right, so nothing on the stack reduces before it.
				op := unop(tok.Kind)
				if op == OpNone {
					return nil, p.operandError(tok, "operand", false)
				}
				p.reduceOver(op)
				p.ops = append(p.ops, pending{op: op, tok: *tok})
				break
			}
			op := binop(tok.Kind)
			p.reduceOver(op)
			p.ops = append(p.ops, pending{op: op, tok: *tok})
			operand = true
		case TokenLeftParen:
			if !operand {
				return nil, p.operandError(tok, "operator", false)
			}
			p.ops = append(p.ops, pending{tok: *tok})
		case TokenRightParen:
			if operand {
				return nil, p.unexpectedClose(tok, prev)
			}
			if err := p.close(tok); err != nil {
				return nil, err
			}
		default:
			return nil, &TokenError{Col: p.col(tok.Span), Span: tok.Span, Kind: tok.Kind}
		}
		prev = tok
	}
	return p.finish(operand, prev)
}

// finish drains the operator stack at the end of the input.
func (p *parser) finish(operand bool, prev *Token) (*Expr, error) {
	if prev == nil {
		return &Expr{src: p.src}, nil
	}
	if operand {
		if prev.Kind == TokenLeftParen {
			return nil, &BracketError{Col: p.col(prev.Span), Span: prev.Span, Open: true}
		}
		return nil, p.operandError(prev, "operand", true)
	}
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.op == OpNone {
			return nil, &BracketError{Col: p.col(top.tok.Span), Span: top.tok.Span, Open: true}
		}
		p.ops = p.ops[:len(p.ops)-1]
		p.reduce(top)
	}
	if len(p.out) != 1 {
		panic("tracecalc: inconsistent output stack after parsing " + p.src)
	}
	return &Expr{n: p.out[0], src: p.src}, nil
}

// reduceOver reduces operators from the top of the stack that must apply
// before op: those binding more tightly, and those binding equally when op is
// left-associative. It stops at an open bracket marker.
func (p *parser) reduceOver(op Op) {
	prec := op.Precedence()
	right := operators[op].right
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.op == OpNone {
			return
		}
		tp := top.op.Precedence()
		if tp < prec || tp == prec && right {
			return
		}
		p.ops = p.ops[:len(p.ops)-1]
		p.reduce(top)
	}
}

// close handles a close bracket by reducing to the matching open bracket.
func (p *parser) close(tok *Token) error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if top.op == OpNone {
			n := p.out[len(p.out)-1]
			n.span = Combine(p.src, top.tok.Span, n.span, tok.Span)
			return nil
		}
		p.reduce(top)
	}
	return &BracketError{Col: p.col(tok.Span), Span: tok.Span, Open: false}
}

// reduce pops the operands of an operator from the output stack and pushes
// the combined node. Negation of a literal folds into the literal.
func (p *parser) reduce(e pending) {
	arity := operators[e.op].arity
	if len(p.out) < arity {
		panic("tracecalc: operator " + e.tok.String() + " reduced without operands")
	}
	if arity == 1 {
		x := p.out[len(p.out)-1]
		span := Combine(p.src, e.tok.Span, x.span)
		if x.op == OpNone {
			p.out[len(p.out)-1] = &node{val: -x.val, span: span}
			return
		}
		p.out[len(p.out)-1] = &node{op: e.op, left: x, span: span, opspan: e.tok.Span}
		return
	}
	r := p.out[len(p.out)-1]
	l := p.out[len(p.out)-2]
	p.out = p.out[:len(p.out)-2]
	p.out = append(p.out, &node{
		op:     e.op,
		left:   l,
		right:  r,
		span:   Combine(p.src, l.span, e.tok.Span, r.span),
		opspan: e.tok.Span,
	})
}

// unexpectedClose returns an error for a close bracket found where an operand
// should begin.
func (p *parser) unexpectedClose(tok, prev *Token) error {
	switch {
	case prev == nil:
		return &BracketError{Col: p.col(tok.Span), Span: tok.Span, Open: false}
	case prev.Kind == TokenLeftParen:
		return &EmptyExpressionError{Col: p.col(tok.Span), Span: Combine(p.src, prev.Span, tok.Span), End: tok.Span.Text}
	default:
		return p.operandError(prev, "operand", true)
	}
}

func (p *parser) operandError(tok *Token, want string, after bool) error {
	return &OperandError{
		Col:   p.col(tok.Span),
		Span:  tok.Span,
		Token: tok.Span.Text,
		Want:  want,
		After: after,
	}
}

// col gets the error column of a span.
func (p *parser) col(s Span) int {
	return column(p.src, s.Start)
}

// Empty returns whether the expression has no terms.
func (e *Expr) Empty() bool {
	return e == nil || e.n == nil
}

// Span returns the span of the whole expression.
func (e *Expr) Span() Span {
	if e.Empty() {
		return Span{}
	}
	return e.n.span
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string {
	if e == nil {
		return ""
	}
	return e.src
}

// String creates the fully parenthesized rendering of the expression, which
// is the first line of its evaluation trace.
func (e *Expr) String() string {
	if e.Empty() {
		return ""
	}
	return e.n.String()
}
