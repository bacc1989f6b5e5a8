package tokens

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind Kind
	Text string
	Pos  Pos
}

func (t Token) String() string {
	return fmt.Sprintf("Type: %s, Value: '%s' (L:%d, C:%d)", t.Kind, t.Text, t.Pos.Line, t.Pos.Column)
}

// Terminated reports whether toks is a well-formed token sequence: non-empty and ending with exactly one END_OF_FILE.
func Terminated(toks []Token) bool {
	if len(toks) == 0 {
		return false
	}
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind == KindEOF {
			return false
		}
	}
	return toks[len(toks)-1].Kind == KindEOF
}
