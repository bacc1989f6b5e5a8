package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/unasm/modes"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestDevelopmentLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("foo")
		logger.With("k", "v").Debug("bar")
	})
	out := buf.String()
	if !strings.Contains(out, "msg=foo") {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(out, "msg=bar k=v") {
		t.Fatalf("got %q", out)
	}
}

func TestToJournalKey(t *testing.T) {
	if str := toJournalKey("logs.unit"); str != "LOGS_UNIT" {
		t.Fatalf("got %s", str)
	}
}
