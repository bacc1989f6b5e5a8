package asms

import (
	"iter"
	"slices"
	"strings"
)

var (
	Prologue = []string{
		"section .text",
		"global _start",
		"_start:",
	}

	// exit(0)
	exitSequence = []string{
		"MOV RAX, 60",
		"XOR RDI, RDI",
		"SYSCALL",
	}
)

const DefaultIndent = "  "

// Program is a generated listing. The zero value is an empty listing.
type Program struct {
	lines  []string
	instrs []Instr
}

func (p Program) Lines() []string {
	return slices.Clone(p.lines)
}

func (p Program) All() iter.Seq[string] {
	return slices.Values(p.lines)
}

func (p Program) Len() int {
	return len(p.lines)
}

// Body returns the instructions between prologue and epilogue.
func (p Program) Body() []Instr {
	return slices.Clone(p.instrs)
}

func (p Program) String() string {
	var b strings.Builder
	for _, line := range p.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Builder accumulates a program. Lines are only ever appended.
type Builder struct {
	indent string
	lines  []string
	instrs []Instr
}

func NewBuilder(indent string) *Builder {
	return &Builder{
		indent: indent,
	}
}

func (b *Builder) Prologue() {
	b.lines = append(b.lines, Prologue...)
}

func (b *Builder) Emit(instrs ...Instr) {
	for _, instr := range instrs {
		b.lines = append(b.lines, b.indent+instr.String())
		b.instrs = append(b.instrs, instr)
	}
}

func (b *Builder) Epilogue() {
	b.lines = append(b.lines, "")
	for _, line := range exitSequence {
		b.lines = append(b.lines, b.indent+line)
	}
}

func (b *Builder) Program() Program {
	return Program{
		lines:  slices.Clip(b.lines),
		instrs: slices.Clip(b.instrs),
	}
}

// ExitSequence returns the epilogue instructions as they appear in a listing indented by indent.
func ExitSequence(indent string) []string {
	ret := make([]string, 0, len(exitSequence))
	for _, line := range exitSequence {
		ret = append(ret, indent+line)
	}
	return ret
}
