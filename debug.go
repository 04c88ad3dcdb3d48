package pinpoint

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger receives lifecycle and debug output. Silent until SetLogger or
// Scene.SetDebugMode installs a real one.
var logger = zerolog.Nop()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// newDebugLogger builds the human-readable stderr logger used in debug mode.
func newDebugLogger() zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("lib", "pinpoint").
		Logger()
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("pinpoint debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn().
			Int("depth", depth).
			Int("max", debugMaxTreeDepth).
			Str("node", n.Name).
			Msg("tree depth exceeds threshold")
	}
}
