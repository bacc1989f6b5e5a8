package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/unasm/cmds"
	"github.com/reusee/unasm/compiles"
	"github.com/reusee/unasm/debugs"
	"github.com/reusee/unasm/logs"
	"github.com/reusee/unasm/modes"
	"github.com/reusee/unasm/unaconfigs"
)

var (
	fileFlags = cmds.Collect[string]("-file", "compile a source file, may repeat")
	srcFlag   = cmds.Var[string]("-src", "compile source text")
	demoFlag  = cmds.Switch("-demo", "compile the built-in sample program")
	tapFlag   = cmds.Switch("-tap", "open a starlark session on each result")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.PrintUsage()
		os.Exit(1)
	}

	scope := dscope.New(
		new(compiles.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	var failed bool
	scope.Call(func(
		compileAll compiles.CompileAll,
		report compiles.Report,
		tap debugs.Tap,
		logger logs.Logger,
		configFiles unaconfigs.Files,
		strict unaconfigs.Strict,
	) {
		ctx := context.Background()

		units, err := loadUnits(slices.Concat([]string(configFiles), *fileFlags))
		if err != nil {
			logger.ErrorContext(ctx, "load sources", "error", err)
			failed = true
			return
		}

		results, err := compileAll(ctx, units)
		if err != nil {
			logger.ErrorContext(ctx, "compile", "error", err)
			failed = true
		}

		for _, result := range results {
			if result == nil {
				continue
			}
			if err := report(os.Stdout, result); err != nil {
				logger.ErrorContext(ctx, "report", "error", err)
				failed = true
				return
			}
			if bool(strict) && result.HasErrors() {
				failed = true
			}

			if *tapFlag {
				tap(ctx, result.Unit.Name, map[string]any{
					"tokens":      result.Tokens,
					"program":     result.Program.Lines(),
					"diagnostics": result.Diagnostics,
					"stack":       result.Stack,
					"stats":       result.Stats,
				})
			}
		}
	})

	if failed {
		os.Exit(1)
	}
}

func loadUnits(paths []string) (units []compiles.Unit, err error) {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, wrap(err)
		}
		units = append(units, compiles.Unit{
			Name:   path,
			Source: string(content),
		})
	}
	if *srcFlag != "" {
		units = append(units, compiles.Unit{
			Name:   "src",
			Source: *srcFlag,
		})
	}
	if *demoFlag || len(units) == 0 {
		units = append(units, compiles.DemoUnit)
	}
	return
}
