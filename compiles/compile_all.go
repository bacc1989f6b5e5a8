package compiles

import (
	"context"
	"errors"
	"sync"

	"github.com/reusee/unasm/logs"
	"github.com/reusee/unasm/syncs"
	"github.com/reusee/unasm/unaconfigs"
)

// CompileAll compiles independent units concurrently. Results are in input
// order; a unit that failed or was not started has a nil result.
type CompileAll func(ctx context.Context, units []Unit) ([]*Result, error)

func (Module) CompileAll(
	compile Compile,
	parallel unaconfigs.Parallel,
	logger logs.Logger,
) CompileAll {
	return func(ctx context.Context, units []Unit) ([]*Result, error) {
		results := make([]*Result, len(units))
		errs := make([]error, len(units))
		sem := syncs.NewSemaphore(int(parallel))
		wg := new(sync.WaitGroup)

		logger.DebugContext(ctx, "compile all",
			"units", len(units),
			"parallel", int(parallel),
		)

		for i, unit := range units {
			if err := sem.AcquireContext(ctx); err != nil {
				errs[i] = err
				break
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				results[i], errs[i] = compile(ctx, unit)
			}()
		}
		wg.Wait()

		return results, errors.Join(errs...)
	}
}
