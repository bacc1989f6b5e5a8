package diags

import (
	"fmt"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Render formats d with the offending source line and a caret under its column.
func (s *Source) Render(d Diagnostic) string {
	var sb strings.Builder
	if s.Name != "" {
		sb.WriteString(fmt.Sprintf("%s: %s at %s:%d:%d\n", d.Severity, d.Message, s.Name, d.Pos.Line, d.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s: %s at %d:%d\n", d.Severity, d.Message, d.Pos.Line, d.Pos.Column))
	}

	idx := d.Pos.Line - 1
	if idx < 0 || idx >= len(s.Lines) {
		return sb.String()
	}
	line := strings.TrimRight(s.Lines[idx], "\r")
	sb.WriteString(line)
	sb.WriteString("\n")

	col := d.Pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
