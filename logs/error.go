package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapUnit annotates err with the compilation unit carried by ctx, if any.
func WrapUnit(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(UnitKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("unit: %s", v.(Unit)))
}
