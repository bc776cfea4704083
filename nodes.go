package tracecalc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	// op is the operator, or OpNone for a literal.
	op Op
	// val is the value of a literal.
	val int64

	left  *node
	right *node // nil for unary operators

	// span covers the whole subexpression, including any parentheses that
	// group it.
	span Span
	// opspan is the operator token.
	opspan Span
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the fully parenthesized form of the tree, which is the initial
// text of an evaluation trace.
func (n *node) fmt(b *strings.Builder) {
	switch n.op {
	case OpNone:
		var buf [20]byte
		b.Write(strconv.AppendInt(buf[:0], n.val, 10))
	case OpNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case OpAdd, OpSub, OpMul, OpDiv:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(operators[n.op].sym)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("tracecalc: invalid node operator " + strconv.Itoa(int(n.op)) + " after writing " + b.String())
	}
}

// redex renders a node whose operands have been reduced to x and y, in the
// same form fmt would produce for it. It is the text the trace replaces when
// the node is reduced.
func redex(op Op, x, y int64) string {
	b := make([]byte, 0, 48)
	if operators[op].arity == 1 {
		b = append(b, "(-"...)
		b = strconv.AppendInt(b, x, 10)
		return string(append(b, ')'))
	}
	b = append(b, '(')
	b = strconv.AppendInt(b, x, 10)
	b = append(b, ' ')
	b = append(b, operators[op].sym...)
	b = append(b, ' ')
	b = strconv.AppendInt(b, y, 10)
	return string(append(b, ')'))
}

// depth returns the height of the tree.
func (n *node) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if r > l {
		l = r
	}
	return l + 1
}
