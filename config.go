// Package obf is a compile-time code-obfuscation library for integer
// variables, integer literals and short string literals. Every obfuscated
// value's machine representation is driven by a deterministic,
// per-call-site bijection chosen from a seed at first use; runtime
// arithmetic on it observes exactly the same results as plain T arithmetic.
//
// See Variable, Literal and String for the three value families, and
// Configure for the one-time, process-wide setup every build should do
// before constructing its first obfuscated value.
package obf

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/veilforge/obf/internal/rng"
)

// Config is the engine's process-wide, immutable-after-first-use
// configuration. Go has no compiler flags of its own to carry
// "compile-time" configuration the way spec.md's source language does, so
// Configure and the environment variables below are this library's
// realization of spec.md §6's flags table.
type Config struct {
	// Seed is global_seed. Configure without WithSeed, and no OBF_SEED in
	// the environment, leaves this at its zero value and Configured false;
	// it is Configured being false, not the zero seed, that selects debug
	// pass-through mode (see debug.go).
	Seed uint64

	// Scale is added to every site's requested tier exponent.
	Scale int

	// AntiDebug activates literal context variant 4 (enable_anti_debug).
	AntiDebug bool

	// Configured reports whether a seed (of any value, zero included) has
	// been established, either via WithSeed or OBF_SEED. It is exported only for
	// diagnostics; callers should use Configure/Option, not this field,
	// to set configuration.
	Configured bool
}

// Option configures Config. The pattern mirrors sixafter-nanoid's
// Option/ConfigOptions: a function over a mutable options struct, applied
// in order by Configure.
type Option func(*Config)

// WithSeed sets global_seed explicitly, overriding OBF_SEED.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.Configured = true
	}
}

// WithScale sets scale, overriding OBF_SCALE.
func WithScale(scale int) Option {
	return func(c *Config) {
		c.Scale = scale
	}
}

// WithAntiDebug enables literal context variant 4, overriding OBF_ANTI_DEBUG.
func WithAntiDebug(enabled bool) Option {
	return func(c *Config) {
		c.AntiDebug = enabled
	}
}

var (
	configMu       sync.Mutex
	config         = configFromEnvironment()
	configureCalls int
	firstSiteBuilt bool
)

// configFromEnvironment reads OBF_SEED, OBF_SCALE and OBF_ANTI_DEBUG at
// package init, the closest Go analogue to passing -D flags to a C++
// compiler: a build can be "configured" purely by the environment it runs
// in, with no source change.
func configFromEnvironment() Config {
	var c Config
	if v, ok := os.LookupEnv("OBF_SEED"); ok {
		if seed, err := strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64); err == nil {
			c.Seed = seed
			c.Configured = true
		}
	}
	if v, ok := os.LookupEnv("OBF_SCALE"); ok {
		if scale, err := strconv.Atoi(v); err == nil {
			c.Scale = scale
		}
	}
	if v, ok := os.LookupEnv("OBF_ANTI_DEBUG"); ok {
		c.AntiDebug = v == "1" || strings.EqualFold(v, "true")
	}
	return c
}

// Configure applies opts to the process-wide Config. It must be called, if
// at all, before the first obfuscated value (Variable, Literal or String)
// is constructed anywhere in the process; calling it twice, or after that
// first construction, panics with ErrAlreadyConfigured — spec.md frames
// this configuration as compile-time, and a compile-time flag cannot
// change after compilation has started.
func Configure(opts ...Option) {
	configMu.Lock()
	defer configMu.Unlock()

	if configureCalls > 0 || firstSiteBuilt {
		panic(ErrAlreadyConfigured)
	}
	configureCalls++

	for _, opt := range opts {
		opt(&config)
	}
}

// currentConfig returns the active Config and marks that a site has now
// been built under it, locking out any later Configure call.
func currentConfig() Config {
	configMu.Lock()
	defer configMu.Unlock()
	firstSiteBuilt = true
	return config
}

// expCycles is exp_cycles(n) = (n odd ? 3 : 1) * 10^(n/2): 1, 3, 10, 30,
// 100, 300, 1000, ... — the only runtime-cost control spec.md §6 exposes.
func expCycles(n int) int {
	cycles := 1
	for i := 0; i < n/2; i++ {
		cycles *= 10
	}
	if n%2 != 0 {
		cycles *= 3
	}
	return cycles
}

// tierBudget validates e and returns the cycle budget for requesting it
// under the current scale.
func tierBudget(e, scale int) int {
	if e < 0 || e > 6 {
		panic(ErrInvalidTier)
	}
	return expCycles(e + scale)
}

// globalConstants derives the process-wide A/B/C constants from the active
// seed; every site's tree uses the same triple, per spec.md §3.
func globalConstants(seed uint64) rng.Constants {
	return rng.DeriveConstants(seed)
}
