package lexers

import (
	"iter"
	"unicode/utf8"

	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/tokens"
)

type Lexer struct {
	source string
	sink   diags.Sink

	offset int
	line   int
	column int
}

func New(source string, sink diags.Sink) *Lexer {
	return &Lexer{
		source: source,
		sink:   diags.OrDiscard(sink),
		line:   1,
		column: 1,
	}
}

func (l *Lexer) peek() rune {
	if l.offset >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.offset:])
	return r
}

func (l *Lexer) advance() rune {
	if l.offset >= len(l.source) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.offset:])
	l.offset += size
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.offset < len(l.source) && isWhitespace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) pos() tokens.Pos {
	return tokens.Pos{
		Line:   l.line,
		Column: l.column,
	}
}

// Next returns the token at the cursor and moves past it.
// At the end of input it keeps returning END_OF_FILE.
func (l *Lexer) Next() tokens.Token {
	l.skipWhitespace()
	pos := l.pos()

	if l.offset >= len(l.source) {
		return tokens.Token{
			Kind: tokens.KindEOF,
			Pos:  pos,
		}
	}

	start := l.offset
	r := l.advance()

	if isDigit(r) {
		for isDigit(l.peek()) {
			l.advance()
		}
		return tokens.Token{
			Kind: tokens.KindInteger,
			Text: l.source[start:l.offset],
			Pos:  pos,
		}
	}

	if kind, ok := tokens.ByRune(r); ok {
		return tokens.Token{
			Kind: kind,
			Text: l.source[start:l.offset],
			Pos:  pos,
		}
	}

	tok := tokens.Token{
		Kind: tokens.KindUnknown,
		Text: l.source[start:l.offset],
		Pos:  pos,
	}
	l.sink.Emit(diags.UnknownChar(tok))
	return tok
}

// Tokens yields tokens up to and including the first END_OF_FILE.
func (l *Lexer) Tokens() iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for {
			tok := l.Next()
			if !yield(tok) {
				return
			}
			if tok.Kind == tokens.KindEOF {
				return
			}
		}
	}
}

func (l *Lexer) All() (ret []tokens.Token) {
	for tok := range l.Tokens() {
		ret = append(ret, tok)
	}
	return
}

func Tokenize(source string, sink diags.Sink) []tokens.Token {
	return New(source, sink).All()
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
