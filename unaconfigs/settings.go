package unaconfigs

import (
	"strings"

	"github.com/reusee/unasm/asms"
	"github.com/reusee/unasm/cmds"
	"github.com/reusee/unasm/configs"
	"github.com/reusee/unasm/logs"
)

// Indent prefixes every instruction line of a generated program.
type Indent string

var indentFlag = cmds.Var[int]("-indent", "indent instructions by n spaces")

func (Module) Indent(
	loader configs.Loader,
	logger logs.Logger,
) Indent {
	if *indentFlag > 0 {
		return Indent(strings.Repeat(" ", *indentFlag))
	}
	if n, ok := lookup[int](logger, loader, "indent"); ok {
		return Indent(strings.Repeat(" ", n))
	}
	return Indent(asms.DefaultIndent)
}

// ShowTokens enables the token listing in reports.
type ShowTokens bool

var showTokensFlag = cmds.Switch("-tokens", "list tokens in reports")

func (Module) ShowTokens(
	loader configs.Loader,
	logger logs.Logger,
) ShowTokens {
	if *showTokensFlag {
		return true
	}
	v, _ := lookup[bool](logger, loader, "show_tokens")
	return ShowTokens(v)
}

// Parallel bounds the number of units compiled at the same time.
type Parallel int

const defaultParallel = 4

var parallelFlag = cmds.Var[int]("-parallel", "compile at most n units at the same time")

func (Module) Parallel(
	loader configs.Loader,
	logger logs.Logger,
) Parallel {
	if *parallelFlag > 0 {
		return Parallel(*parallelFlag)
	}
	if n, ok := lookup[int](logger, loader, "parallel"); ok && n > 0 {
		return Parallel(n)
	}
	return defaultParallel
}

// Execute runs generated programs on the stack machine after compiling.
type Execute bool

var executeFlag = cmds.Switch("-run", "execute generated programs and print the stack")

func (Module) Execute(
	loader configs.Loader,
	logger logs.Logger,
) Execute {
	if *executeFlag {
		return true
	}
	v, _ := lookup[bool](logger, loader, "run")
	return Execute(v)
}

// Strict makes syntax errors fail the run.
type Strict bool

var strictFlag = cmds.Switch("-strict", "exit with failure status on syntax errors")

func (Module) Strict(
	loader configs.Loader,
	logger logs.Logger,
) Strict {
	if *strictFlag {
		return true
	}
	v, _ := lookup[bool](logger, loader, "strict")
	return Strict(v)
}

// Files are source files named by configuration. Every config file contributes,
// in lookup order, without duplicates.
type Files []string

func (Module) Files(
	loader configs.Loader,
	logger logs.Logger,
) (ret Files) {
	seen := make(map[string]bool)
	for files, err := range configs.All[[]string](loader, "files") {
		if err != nil {
			logger.Warn("bad config value", "path", "files", "error", err)
			return nil
		}
		for _, file := range files {
			if seen[file] {
				continue
			}
			seen[file] = true
			ret = append(ret, file)
		}
	}
	return
}
