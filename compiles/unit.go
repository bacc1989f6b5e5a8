package compiles

import (
	"math/big"

	"github.com/reusee/unasm/asms"
	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/parsers"
	"github.com/reusee/unasm/tokens"
)

// Unit is one source to compile.
type Unit struct {
	Name   string
	Source string
}

type Result struct {
	Unit        Unit
	Tokens      []tokens.Token
	Program     asms.Program
	Diagnostics []diags.Diagnostic
	Stats       parsers.Stats

	// final machine stack, set when execution is enabled
	Stack    []*big.Int
	Executed bool
}

func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diags.Error {
			return true
		}
	}
	return false
}
