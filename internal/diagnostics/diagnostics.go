// Package diagnostics is the opt-in, off-by-default structured logger
// spec.md's core design explicitly keeps out of the engine itself
// ("build-time diagnostic printing" is listed among the core's
// non-goals) but which a real adopter of this library still wants: a
// record of each call site's context, width and budget, logged once, the
// first time that site's tree is built. The version field carries whatever
// the caller passes; the engine's own call sites pass an empty string.
package diagnostics

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger *zerolog.Logger
)

// Enable installs a zerolog logger writing to w. Diagnostics are silent
// (zero overhead beyond a RWMutex read) until this is called.
func Enable(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	l := zerolog.New(w).With().Timestamp().Logger()
	logger = &l
}

// Disable removes the installed logger, if any.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	logger = nil
}

// SiteBuilt records one call site's first tree construction. It is called
// from inside the same sync.Once that builds the tree, never on every
// subsequent read, so it cannot appear on the hot path.
func SiteBuilt(site string, version string, context string, width int, budget int) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return
	}
	l.Debug().
		Str("site", site).
		Str("version", version).
		Str("context", context).
		Int("width", width).
		Int("budget", budget).
		Msg("obf: site tree built")
}
