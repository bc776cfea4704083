package tracecalc

import (
	"errors"
	"strconv"
)

// Error categories. Every error returned for invalid input unwraps to exactly
// one of them.
var (
	// ErrLexical is the category of inputs containing a character that
	// begins no token.
	ErrLexical = errors.New("lexical error")
	// ErrStructural is the category of token sequences that do not form an
	// expression.
	ErrStructural = errors.New("malformed expression")
	// ErrArithmetic is the category of expressions that cannot be evaluated.
	ErrArithmetic = errors.New("arithmetic error")
)

// LexError indicates an invalid character. It implements InputError.
type LexError struct {
	// Col is the position of the character.
	Col int
	// Span covers the character.
	Span Span
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Span.Text))
}

func (err *LexError) Pos() int { return err.Col }
func (err *LexError) Location() Span { return err.Span }
func (err *LexError) Unwrap() error { return ErrLexical }

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Span covers the unmatched bracket.
	Span Span
	// Open is true if the bracket is an open bracket with no close bracket,
	// and false if it is a close bracket with no open bracket.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int { return err.Col }
func (err *BracketError) Location() Span { return err.Span }
func (err *BracketError) Unwrap() error { return ErrStructural }

// OperandError is an error indicating an operator that lacks an operand, or
// an operand that is not joined to the expression before it by an operator.
// It implements InputError.
type OperandError struct {
	// Col is the position of Token.
	Col int
	// Span covers Token.
	Span Span
	// Token is the token where the problem was detected.
	Token string
	// Want is what the parser expected, either "operand" or "operator".
	Want string
	// After is true if the missing piece belongs after Token and false if it
	// belongs before it.
	After bool
}

func (err *OperandError) Error() string {
	where := " before "
	if err.After {
		where = " after "
	}
	return errpos(err.Col, "missing "+err.Want+where+strconv.Quote(err.Token))
}

func (err *OperandError) Pos() int { return err.Col }
func (err *OperandError) Location() Span { return err.Span }
func (err *OperandError) Unwrap() error { return ErrStructural }

// EmptyExpressionError is an error indicating an empty parenthesized
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// Span covers the brackets of the empty subexpression.
	Span Span
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int { return err.Col }
func (err *EmptyExpressionError) Location() Span { return err.Span }
func (err *EmptyExpressionError) Unwrap() error { return ErrStructural }

// TokenError indicates a token whose kind is not a token kind the lexer
// produces. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Span covers the token.
	Span Span
	// Kind is the token's kind.
	Kind TokenKind
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unknown token "+err.Kind.String())
}

func (err *TokenError) Pos() int { return err.Col }
func (err *TokenError) Location() Span { return err.Span }
func (err *TokenError) Unwrap() error { return ErrStructural }

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
	// Location returns the span of the input responsible for the error.
	Location() Span
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*DivisionError)(nil)
)
