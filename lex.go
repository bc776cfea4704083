package tracecalc

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) of an input, along with the
// text it covers.
type Span struct {
	Start int
	End   int
	Text  string
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ":" + strconv.Itoa(s.End) + " " + strconv.Quote(s.Text)
}

// Combine returns the smallest span covering all of spans. If src is not
// empty, the text of the result is sliced from it; otherwise it is the
// concatenation of the texts of spans in order of their starts, which omits
// any whitespace between them. Combining no spans gives the zero Span.
func Combine(src string, spans ...Span) Span {
	if len(spans) == 0 {
		return Span{}
	}
	v := append([]Span(nil), spans...)
	sort.SliceStable(v, func(i, j int) bool { return v[i].Start < v[j].Start })
	r := Span{Start: v[0].Start, End: v[0].End}
	for _, s := range v[1:] {
		if s.End > r.End {
			r.End = s.End
		}
	}
	if src != "" && r.End <= len(src) {
		r.Text = src[r.Start:r.End]
		return r
	}
	var b strings.Builder
	for _, s := range v {
		b.WriteString(s.Text)
	}
	r.Text = b.String()
	return r
}

// TokenKind is the lexical class of a token.
type TokenKind int8

const (
	// TokenEOF marks the end of the input.
	TokenEOF TokenKind = iota
	// TokenNum is a decimal integer literal.
	TokenNum
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenLeftParen
	TokenRightParen
	// TokenWhitespace is a single whitespace rune.
	TokenWhitespace
	// TokenInvalid is a single rune that begins no token.
	TokenInvalid
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenNum:
		return "Num"
	case TokenPlus:
		return "Plus"
	case TokenMinus:
		return "Minus"
	case TokenAsterisk:
		return "Asterisk"
	case TokenSlash:
		return "Slash"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenWhitespace:
		return "Whitespace"
	case TokenInvalid:
		return "Invalid"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a lexical token. Value is meaningful only for TokenNum.
type Token struct {
	Kind  TokenKind
	Value int64
	Span  Span
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Span.Text + "@" + strconv.Itoa(t.Span.Start)
}

// Lexer scans tokens from a string.
type Lexer struct {
	src string
	pos int
	eof bool
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next scans the next token. At the end of the input, the result is a single
// TokenEOF; every call after that returns false.
func (l *Lexer) Next() (Token, bool) {
	if l.eof {
		return Token{}, false
	}
	start := l.pos
	if start >= len(l.src) {
		l.eof = true
		return Token{Kind: TokenEOF, Span: Span{Start: len(l.src), End: len(l.src)}}, true
	}
	r, sz := utf8.DecodeRuneInString(l.src[start:])
	var tok Token
	switch {
	case '0' <= r && r <= '9':
		tok.Kind = TokenNum
		tok.Value = l.scanNum()
	case unicode.IsSpace(r):
		tok.Kind = TokenWhitespace
		l.pos += sz
	default:
		// An invalid UTF-8 byte decodes as RuneError with size 1 and lands
		// here as an invalid token.
		l.pos += sz
		switch r {
		case '+':
			tok.Kind = TokenPlus
		case '-':
			tok.Kind = TokenMinus
		case '*':
			tok.Kind = TokenAsterisk
		case '/':
			tok.Kind = TokenSlash
		case '(':
			tok.Kind = TokenLeftParen
		case ')':
			tok.Kind = TokenRightParen
		default:
			tok.Kind = TokenInvalid
		}
	}
	tok.Span = Span{Start: start, End: l.pos, Text: l.src[start:l.pos]}
	return tok, true
}

// scanNum consumes a run of decimal digits. The value wraps on overflow.
func (l *Lexer) scanNum() int64 {
	var v int64
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c < '0' || '9' < c {
			break
		}
		v = v*10 + int64(c-'0')
		l.pos++
	}
	return v
}

// Tokenize scans all of src and returns its tokens without whitespace or the
// final EOF. If src contains an invalid rune, the result is nil and a
// *LexError describing the first one.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return toks, nil
		}
		switch tok.Kind {
		case TokenWhitespace:
			continue
		case TokenEOF:
			return toks, nil
		case TokenInvalid:
			return nil, &LexError{Span: tok.Span, Col: column(src, tok.Span.Start)}
		}
		toks = append(toks, tok)
	}
}

// column converts a byte offset in src to a 1-based rune column. Without a
// source, it counts bytes instead.
func column(src string, off int) int {
	if src == "" {
		return off + 1
	}
	if off > len(src) {
		off = len(src)
	}
	return utf8.RuneCountInString(src[:off]) + 1
}
