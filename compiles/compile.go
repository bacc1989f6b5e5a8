package compiles

import (
	"context"

	"github.com/reusee/unasm/asms"
	"github.com/reusee/unasm/diags"
	"github.com/reusee/unasm/lexers"
	"github.com/reusee/unasm/logs"
	"github.com/reusee/unasm/parsers"
	"github.com/reusee/unasm/unaconfigs"
)

// Compile runs one unit through lexer, parser and, if enabled, the stack machine.
// Syntax errors are part of the result; the error is for malformed token
// sequences and internal failures, in which case no result is produced.
type Compile func(ctx context.Context, unit Unit) (*Result, error)

func (Module) Compile(
	logger logs.Logger,
	newUnit logs.NewUnit,
	indent unaconfigs.Indent,
	execute unaconfigs.Execute,
) Compile {
	return func(ctx context.Context, unit Unit) (*Result, error) {
		ctx, _ = newUnit(ctx, unit.Name)

		collector := new(diags.Collector)
		sink := diags.Multi{
			collector,
			diags.LogSink{
				Ctx:    ctx,
				Logger: logger,
			},
		}

		toks := lexers.Tokenize(unit.Source, sink)
		logger.DebugContext(ctx, "lexed", "tokens", len(toks))

		parser, err := parsers.New(toks, sink, parsers.WithIndent(string(indent)))
		if err != nil {
			return nil, logs.WrapUnit(ctx, err)
		}
		program, err := parser.Parse()
		if err != nil {
			return nil, logs.WrapUnit(ctx, err)
		}

		result := &Result{
			Unit:        unit,
			Tokens:      toks,
			Program:     program,
			Diagnostics: collector.Diagnostics(),
			Stats:       parser.Stats(),
		}
		logger.InfoContext(ctx, "compiled",
			"accepted", result.Stats.Accepted,
			"rejected", result.Stats.Rejected,
			"warnings", collector.Count(diags.Warning),
		)

		if execute {
			stack, err := asms.Exec(program)
			if err != nil {
				return nil, logs.WrapUnit(ctx, err)
			}
			result.Stack = stack
			result.Executed = true
		}

		return result, nil
	}
}
