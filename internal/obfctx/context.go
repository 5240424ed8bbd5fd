// Package obfctx implements the concealment wrappers spec.md §4.3 calls
// "contexts": the outermost Inject/Surject layer that a site's bijection
// tree is built under. A context is not a subtype of some common base —
// per spec.md §9's design note, this is deliberately modeled as a small
// interface with Narrow/Recurse projections rather than an inheritance
// hierarchy, because the five literal contexts and the one variable context
// don't share enough behavior to justify one.
package obfctx

import "github.com/veilforge/obf/internal/wire"

// Context is the outermost wrapper a bijection tree is built under. Exactly
// one Context wraps the root of any given site's tree; versions that
// recurse into a narrower width ask for a projection of the current
// context via Narrow or Recurse rather than inventing their own.
type Context interface {
	// Name identifies the context for diagnostics.
	Name() string

	// ContextCycles is the fixed cost floor the root must reserve before
	// the catalog dispatches a version for the remaining budget.
	ContextCycles() int

	// Narrow returns the projection of this context to use when a version
	// obfuscates a half-width sub-value and the outer wrapper's flavor
	// should collapse to a zero-cost identity at the inner width (the
	// "intermediate context" of spec.md §4.3).
	Narrow() Context

	// Recurse returns the projection of this context to use when a
	// version wants the same concealment flavor to reappear at a
	// half-width sub-value (the "recursive context" of spec.md §4.3).
	Recurse() Context

	// NestedLiteralBudget returns the cycle budget V4 should give the
	// nested literal that conceals its CINV constant, given the outer
	// budget available at the call site. Literal contexts return 0 so
	// nested literals terminate recursion instead of nesting forever;
	// Variable returns a fraction of outer.
	NestedLiteralBudget(outer int) int

	// FinalInject and FinalSurject implement the context's own
	// concealment layer, applied once around the whole composed catalog
	// tree built under it.
	FinalInject(width wire.Width, x uint64) uint64
	FinalSurject(width wire.Width, x uint64) uint64
}
