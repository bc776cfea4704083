// Package tracecalc implements an integer calculator that shows its work.
//
// Expressions are built from decimal integers, the binary operators + - * /,
// unary negation, and parentheses. Multiplication and division bind tighter
// than addition and subtraction, and operators of equal precedence group to
// the left, so "8 - 3 - 2" is "(8 - 3) - 2". Division truncates toward zero.
//
// Evaluation produces the value of the expression and a trace: a fully
// parenthesized rendering of the expression that is rewritten after each
// reduction, so "(1 + 2) * 4" yields the steps "(3 * 4)" and "12".
package tracecalc
