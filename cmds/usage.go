package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage lists every command once, sorted by primary name.
func (p *Executor) WriteUsage(w io.Writer) {
	names := make([]string, 0, len(p.commands))
	for name, command := range p.commands {
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		command := p.commands[name]
		title := name + argsHint(command)
		if len(command.Aliases) > 0 {
			title += " | " + strings.Join(command.Aliases, " | ")
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s\t%s\n", title, command.Description)
		} else {
			fmt.Fprintf(w, "%s\n", title)
		}
	}
}

func argsHint(command *Command) string {
	var b strings.Builder
	fnType := command.Func.Type()
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		if t.Kind() == reflect.Pointer {
			fmt.Fprintf(&b, " [%s]", t.Elem().Kind())
		} else {
			fmt.Fprintf(&b, " <%s>", t.Kind())
		}
	}
	return b.String()
}
