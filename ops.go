package tracecalc

// Op is an arithmetic operator.
type Op int8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	// OpNeg is unary negation.
	OpNeg
)

// operator describes how an Op parses and what it computes.
type operator struct {
	// sym is the operator's rendering in traces.
	sym string
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity. Only prefix operators set it.
	right bool
	// arity is the number of operands.
	arity int
	// fn computes the operator. For unary operators, y is always 0. A false
	// second result means the operands are outside the operator's domain.
	fn func(x, y int64) (int64, bool)
}

var operators = [...]operator{
	OpNone: {},
	OpAdd: {sym: "+", prec: 1, arity: 2, fn: func(x, y int64) (int64, bool) {
		return x + y, true
	}},
	OpSub: {sym: "-", prec: 1, arity: 2, fn: func(x, y int64) (int64, bool) {
		return x - y, true
	}},
	OpMul: {sym: "*", prec: 2, arity: 2, fn: func(x, y int64) (int64, bool) {
		return x * y, true
	}},
	OpDiv: {sym: "/", prec: 2, arity: 2, fn: func(x, y int64) (int64, bool) {
		if y == 0 {
			return 0, false
		}
		// Go's division truncates toward zero, and MinInt64 / -1 wraps to
		// MinInt64 rather than trapping.
		return x / y, true
	}},
	OpNeg: {sym: "-", prec: 3, right: true, arity: 1, fn: func(x, _ int64) (int64, bool) {
		return -x, true
	}},
}

func (op Op) String() string {
	if op <= OpNone || int(op) >= len(operators) {
		return "Op(?)"
	}
	return operators[op].sym
}

// Precedence returns the binding strength of op: 1 for + and -, 2 for * and /,
// 3 for negation, and 0 for anything else.
func (op Op) Precedence() int {
	if op <= OpNone || int(op) >= len(operators) {
		return 0
	}
	return int(operators[op].prec)
}

// binop gets the binary operator for a token kind. If the kind is not a binary
// operator, the result is OpNone.
func binop(k TokenKind) Op {
	switch k {
	case TokenPlus:
		return OpAdd
	case TokenMinus:
		return OpSub
	case TokenAsterisk:
		return OpMul
	case TokenSlash:
		return OpDiv
	default:
		return OpNone
	}
}

// unop gets the prefix operator for a token kind. If there is no such
// operator, the result is OpNone.
func unop(k TokenKind) Op {
	if k == TokenMinus {
		return OpNeg
	}
	return OpNone
}

// apply computes op on its operands.
func (op Op) apply(x, y int64) (int64, bool) {
	return operators[op].fn(x, y)
}
