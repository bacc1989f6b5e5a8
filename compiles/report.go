package compiles

import (
	"bufio"
	"io"

	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/tokens"
	"github.com/reusee/unasm/unaconfigs"
)

// Report renders a result for humans.
type Report func(w io.Writer, result *Result) error

func (Module) Report(
	showTokens unaconfigs.ShowTokens,
) Report {
	return func(w io.Writer, result *Result) error {
		bw := bufio.NewWriter(w)
		p := func(strs ...string) {
			for _, s := range strs {
				bw.WriteString(s)
			}
			bw.WriteString("\n")
		}

		p("--- Source Code: ", result.Unit.Name, " ---")
		p(result.Unit.Source)

		if showTokens {
			p("--- Lexing ---")
			p("Tokens found:")
			for _, tok := range result.Tokens {
				p("  ", tok.String())
				if tok.Kind == tokens.KindUnknown {
					p("  Lexer Warning: Encountered unknown token.")
				}
			}
			p()
		}

		p("--- Parsing & Code Generation ---")
		p("Generated Pseudo-Assembly:")
		for line := range result.Program.All() {
			p(line)
		}

		if len(result.Diagnostics) > 0 {
			p()
			p("--- Diagnostics ---")
			source := diags.NewSource(result.Unit.Name, result.Unit.Source)
			for _, d := range result.Diagnostics {
				bw.WriteString(source.Render(d))
			}
		}

		if result.Executed {
			p()
			p("--- Stack ---")
			for _, v := range result.Stack {
				p(v.String())
			}
		}

		return bw.Flush()
	}
}
