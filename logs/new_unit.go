package logs

import (
	"context"
	"crypto/rand"
)

// NewUnit derives a context tagged with a fresh compilation unit.
type NewUnit func(ctx context.Context, name string) (context.Context, Unit)

func (Module) NewUnit(
	logger Logger,
) NewUnit {
	return func(ctx context.Context, name string) (context.Context, Unit) {

		var parent Unit
		if v := ctx.Value(UnitKey); v != nil {
			parent = v.(Unit)
		}

		unit := Unit(name + "#" + rand.Text()[:8])
		ctx = context.WithValue(ctx, UnitKey, unit)

		args := []any{"name", name}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new unit", args...)

		return ctx, unit
	}
}
