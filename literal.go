package obf

import "github.com/veilforge/obf/internal/bijection"

// Literal is an obfuscated constant T: unlike Variable it exposes no
// setter, matching spec.md's "integer literal" family, whose value is
// fixed at the call site that constructs it.
type Literal[T bijection.Unsigned] struct {
	node   bijection.Node
	stored uint64
}

// L constructs a Literal holding value, obfuscated under a tree built for
// tier e at this call site, wrapped in one of the five literal contexts
// (spec.md §4.3).
func L[T bijection.Unsigned](value T, e int) Literal[T] {
	width := bijection.WidthOf[T]()
	node := buildLiteralSite(width, e, 1, 0)
	return Literal[T]{node: node, stored: node.Inject(uint64(value))}
}

// Get recovers the plain value.
func (l Literal[T]) Get() T {
	return T(l.node.Surject(l.stored))
}
