package pinpoint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func withDebug(t *testing.T) {
	t.Helper()
	prev := globalDebug
	globalDebug = true
	t.Cleanup(func() { globalDebug = prev })
}

func TestDebugAddChildDisposedPanics(t *testing.T) {
	withDebug(t)
	parent := NewContainer("parent")
	child := NewContainer("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for disposed child")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "disposed node") {
			t.Errorf("panic = %v", r)
		}
	}()
	parent.AddChild(child)
}

func TestDebugDisposedIgnoredOutsideDebugMode(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	child.Dispose()
	parent.AddChild(child) // should not panic
}

func TestDebugTreeDepthWarning(t *testing.T) {
	withDebug(t)
	defer SetLogger(zerolog.Nop())
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))

	n := NewContainer("n0")
	for i := 1; i < debugMaxTreeDepth; i++ {
		c := NewContainer("deep")
		n.AddChild(c)
		n = c
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected warning at depth %d: %s", debugMaxTreeDepth, buf.String())
	}
	n.AddChild(NewContainer("deeper"))

	out := buf.String()
	if !strings.Contains(out, "tree depth exceeds threshold") || !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("log = %q", out)
	}
}
