package obf

import "errors"

// Sentinel errors. spec.md §7 treats most of these as static ("compilation
// fails"); in this runtime-tree-construction model that surfaces as a panic
// carrying one of these errors the first time the offending site is built,
// which is also the first (and in Go, only) point at which it could be
// caught.
var (
	// ErrUnsatisfiableBudget is carried by the panic internal/descriptor
	// raises when no catalog version's min_cycles fits the remaining
	// budget at a site.
	ErrUnsatisfiableBudget = errors.New("obf: no bijection version satisfies the requested tier's cycle budget")

	// ErrInvalidStringLength is the value Str panics with for input longer
	// than MaxStringLength bytes.
	ErrInvalidStringLength = errors.New("obf: string literal exceeds the 32-byte maximum")

	// ErrMutatingInvariantViolated is carried by the panic
	// internal/obfctx raises if the invariant-mutating-global context's
	// 100-step recurrence check ever fails.
	ErrMutatingInvariantViolated = errors.New("obf: mutating-global context invariant violated")

	// ErrAlreadyConfigured is the value Configure panics with when called
	// more than once, or after the first site has already built its tree.
	ErrAlreadyConfigured = errors.New("obf: Configure called more than once, or after the first obfuscated value was constructed")

	// ErrInvalidTier is the value a site build panics with for a tier
	// exponent outside [0, 6].
	ErrInvalidTier = errors.New("obf: tier exponent out of range [0,6]")
)
