package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/unasm/modes"
)

func TestNewUnit(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newUnit NewUnit,
		logger Logger,
	) {
		ctx := context.Background()

		ctx1, unit1 := newUnit(ctx, "foo.ua")
		if !strings.HasPrefix(string(unit1), "foo.ua#") {
			t.Fatalf("got %v", unit1)
		}

		ctx2, unit2 := newUnit(ctx1, "bar.ua")
		logger.InfoContext(ctx2, "hello")

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.unit="+string(unit1)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "parent="+string(unit1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "logs.unit="+string(unit2)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.unit="+string(unit2)) {
			t.Fatalf("got %v", lines[2])
		}

		err := WrapUnit(ctx2, errors.New("boom"))
		if !strings.Contains(err.Error(), "unit: "+string(unit2)) {
			t.Fatalf("got %v", err)
		}
		if WrapUnit(ctx2, nil) != nil {
			t.Fatal()
		}
		if err := WrapUnit(ctx, errors.New("boom")); err.Error() != "boom" {
			t.Fatalf("got %v", err)
		}
	})
}
