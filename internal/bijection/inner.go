package bijection

import (
	"github.com/veilforge/obf/internal/rng"
	"github.com/veilforge/obf/internal/wire"
)

// InnerFn is a non-reversible helper function f: H -> H used only by V2's
// Feistel-style round (spec.md §4.2). It never needs an inverse: V2's
// surjection recovers hi by recomputing f(lo) from the already-recovered lo
// and subtracting, exactly as the original obf_feistel construction does.
type InnerFn func(x uint64, halfWidth wire.Width) uint64

// innerCatalog lists the three candidates; all are unconditionally available
// (non-recursive, negligible cost) so the weights are equal.
var innerCatalog = []struct {
	name string
	fn   InnerFn
}{
	{"identity", innerIdentity},
	{"square", innerSquare},
	{"abs", innerAbs},
}

func innerIdentity(x uint64, halfWidth wire.Width) uint64 {
	return x & halfWidth.Mask()
}

func innerSquare(x uint64, halfWidth wire.Width) uint64 {
	x &= halfWidth.Mask()
	return (x * x) & halfWidth.Mask()
}

// innerAbs reinterprets x as a signed value of halfWidth bits and returns its
// absolute value reinterpreted back as unsigned. This is the half-width
// analogue of spec.md's "non-reversible absolute-value" helper: it is the one
// candidate whose non-reversibility isn't obvious from the name alone (square
// is famously non-injective; negation-then-abs collapses x and -x just the
// same way).
func innerAbs(x uint64, halfWidth wire.Width) uint64 {
	x &= halfWidth.Mask()
	bit := uint64(1) << (uint(halfWidth) - 1)
	if x&bit == 0 {
		return x
	}
	neg := ((^x) + 1) & halfWidth.Mask()
	return neg
}

// PickInnerFn selects one of the three inner functions deterministically
// from s, as V2 does for its Feistel round.
func PickInnerFn(s rng.State) InnerFn {
	idx := rng.WeakRandomInt(s, len(innerCatalog))
	return innerCatalog[idx].fn
}
