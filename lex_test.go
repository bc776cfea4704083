package tracecalc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tk(kind TokenKind, start int, text string) Token {
	return Token{Kind: kind, Span: Span{Start: start, End: start + len(text), Text: text}}
}

func num(v int64, start int, text string) Token {
	t := tk(TokenNum, start, text)
	t.Value = v
	return t
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		{"empty", "", nil},
		{"spaces", " \t", []Token{tk(TokenWhitespace, 0, " "), tk(TokenWhitespace, 1, "\t")}},
		{"zero", "0", []Token{num(0, 0, "0")}},
		{"digits", "9876543210", []Token{num(9876543210, 0, "9876543210")}},
		{"leading-zeros", "007", []Token{num(7, 0, "007")}},
		{"two-nums", "1 0", []Token{num(1, 0, "1"), tk(TokenWhitespace, 1, " "), num(0, 2, "0")}},
		{"minus-num", "-1", []Token{tk(TokenMinus, 0, "-"), num(1, 1, "1")}},
		{"ops", "+-*/", []Token{tk(TokenPlus, 0, "+"), tk(TokenMinus, 1, "-"), tk(TokenAsterisk, 2, "*"), tk(TokenSlash, 3, "/")}},
		{"parens", "(1)", []Token{tk(TokenLeftParen, 0, "("), num(1, 1, "1"), tk(TokenRightParen, 2, ")")}},
		{"invalid", "1a", []Token{num(1, 0, "1"), tk(TokenInvalid, 1, "a")}},
		{"invalid-multibyte", "π", []Token{tk(TokenInvalid, 0, "π")}},
		{"unicode-space", "1\u00a02", []Token{num(1, 0, "1"), tk(TokenWhitespace, 1, "\u00a0"), num(2, 3, "2")}},
		{"bad-utf8", "\xff", []Token{tk(TokenInvalid, 0, "\xff")}},
		{"dot", "1.5", []Token{num(1, 0, "1"), tk(TokenInvalid, 1, "."), num(5, 2, "5")}},
		{"wrap", "9223372036854775808", []Token{num(-9223372036854775808, 0, "9223372036854775808")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewLexer(c.src)
			for _, want := range c.tokens {
				got, ok := l.Next()
				require.True(t, ok, "scanning %q: expected token %v but got nothing", c.src, want)
				assert.Equal(t, want, got, "scanning %q", c.src)
			}
			eof, ok := l.Next()
			require.True(t, ok, "scanning %q: no EOF token", c.src)
			assert.Equal(t, TokenEOF, eof.Kind, "scanning %q: extra token %v", c.src, eof)
			assert.Equal(t, len(c.src), eof.Span.Start)
			assert.Zero(t, eof.Span.Len())
			_, ok = l.Next()
			assert.False(t, ok, "scanning %q: token after EOF", c.src)
			_, ok = l.Next()
			assert.False(t, ok, "scanning %q: token after EOF", c.src)
		})
	}
}

func TestLexSpansCoverInput(t *testing.T) {
	srcs := []string{
		"(10 / 3 + 23) * (1 - 4)",
		"58 - -8 * (58 + 31) - -14",
		"1\t+ 2 ×",
	}
	for _, src := range srcs {
		l := NewLexer(src)
		end := 0
		for {
			tok, ok := l.Next()
			if !ok || tok.Kind == TokenEOF {
				break
			}
			assert.Equal(t, end, tok.Span.Start, "gap before %v in %q", tok, src)
			assert.LessOrEqual(t, tok.Span.Start, tok.Span.End)
			assert.Equal(t, src[tok.Span.Start:tok.Span.End], tok.Span.Text)
			end = tok.Span.End
		}
		assert.Equal(t, len(src), end, "tokens of %q do not reach the end", src)
	}
}

func TestTokenize(t *testing.T) {
	toks, err := Tokenize(" (1 +  23)\t* 4 ")
	require.NoError(t, err)
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{TokenLeftParen, TokenNum, TokenPlus, TokenNum, TokenRightParen, TokenAsterisk, TokenNum}, kinds)
	assert.Equal(t, int64(23), toks[3].Value)
	assert.Equal(t, Span{Start: 7, End: 9, Text: "23"}, toks[3].Span)

	toks, err = Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, toks)

	toks, err = Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, toks)
}

func TestTokenizeInvalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		span Span
	}{
		{"letter", "x", 1, Span{0, 1, "x"}},
		{"after-expr", "1 + 2 $", 7, Span{6, 7, "$"}},
		{"first-of-many", "1 ? 2 ?", 3, Span{2, 3, "?"}},
		{"multibyte", "2 × 3", 3, Span{2, 4, "×"}},
		{"after-multibyte", "π π", 1, Span{0, 2, "π"}},
		{"power", "2^3", 2, Span{1, 2, "^"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			assert.Nil(t, toks, "partial tokens on error")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLexical), "%v is not lexical", err)
			var lerr *LexError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, c.col, lerr.Pos())
			assert.Equal(t, c.span, lerr.Location())
			assert.Contains(t, err.Error(), c.span.Text)
		})
	}
}

func TestCombine(t *testing.T) {
	src := "(1 + 2) * 3"
	a := Span{1, 2, "1"}
	b := Span{5, 6, "2"}
	c := Span{10, 11, "3"}
	assert.Equal(t, Span{1, 6, "1 + 2"}, Combine(src, a, b))
	assert.Equal(t, Span{1, 11, "1 + 2) * 3"}, Combine(src, c, a, b))
	assert.Equal(t, Span{1, 11, "123"}, Combine("", c, a, b))
	assert.Equal(t, Span{}, Combine(src))
	assert.Equal(t, a, Combine(src, a))
}
