package diags

import (
	"fmt"

	"github.com/reusee/unasm/tokens"
)

type Severity uint8

const (
	Warning Severity = iota + 1
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

type Code string

const (
	// CodeUnknownChar marks a character the lexer could not classify.
	CodeUnknownChar Code = "unknown-char"
	// CodeSyntax marks a statement rejected by the parser.
	CodeSyntax Code = "syntax"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Pos      tokens.Pos
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at line %d, col %d: %s", d.Severity, d.Pos.Line, d.Pos.Column, d.Message)
}

func UnknownChar(tok tokens.Token) Diagnostic {
	return Diagnostic{
		Severity: Warning,
		Code:     CodeUnknownChar,
		Pos:      tok.Pos,
		Message:  fmt.Sprintf("unknown character '%s'", tok.Text),
	}
}
