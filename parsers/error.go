package parsers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/tokens"
)

var (
	// ErrInitialization is returned by New for a malformed token sequence.
	ErrInitialization = errors.New("initialization error")
	// ErrConsumption means the parser tried to read past the end of its tokens.
	ErrConsumption = errors.New("attempted to consume past end of tokens")
)

type SyntaxError struct {
	Expected []tokens.Kind
	Got      tokens.Token
}

var _ error = new(SyntaxError)

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: %s",
		s.Got.Pos.Line, s.Got.Pos.Column, s.message())
}

func (s *SyntaxError) message() string {
	names := make([]string, 0, len(s.Expected))
	for _, kind := range s.Expected {
		names = append(names, kind.String())
	}
	var expected string
	switch len(names) {
	case 0:
		expected = "nothing"
	case 1:
		expected = names[0]
	default:
		expected = strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
	got := s.Got.Kind.String()
	if s.Got.Text != "" {
		got += " '" + s.Got.Text + "'"
	}
	return "expected " + expected + ", got " + got
}

func (s *SyntaxError) Diagnostic() diags.Diagnostic {
	return diags.Diagnostic{
		Severity: diags.Error,
		Code:     diags.CodeSyntax,
		Pos:      s.Got.Pos,
		Message:  s.message(),
	}
}
