package bijection

import (
	"github.com/veilforge/obf/internal/descriptor"
	"github.com/veilforge/obf/internal/rng"
)

// addVersion is V1: pick C from {0, 1, A, B, C} and a sign flag, then
// y = (neg ? -x : x) + C mod 2^w, recursing on one child of the same width
// with V1 itself excluded from re-selection so it never immediately picks
// itself again.
type addVersion struct{}

func (addVersion) Name() string { return "v1_add" }

func (addVersion) Descriptor(Width) descriptor.Descriptor {
	return descriptor.Descriptor{Recursive: true, MinCycles: 1, Weight: 6}
}

func (addVersion) Build(bc BuildCtx) Node {
	mask := bc.Width.Mask()
	candidates := [5]uint64{0, 1, uint64(bc.Consts.A), uint64(bc.Consts.B), uint64(bc.Consts.C)}
	idx := rng.WeakRandomInt(bc.State.Step(), len(candidates))
	c := candidates[idx] & mask
	neg := rng.WeakRandomInt(bc.State.StepN(2), 2) == 1

	childBudget := bc.Budget - 1
	if childBudget < 0 {
		childBudget = 0
	}
	child := bc.RecurseSame(bc.State.StepN(3), childBudget, V1)

	return Node{
		Inject: func(x uint64) uint64 {
			y := x
			if neg {
				y = (-y) & mask
			}
			y = (y + c) & mask
			return child.Inject(y)
		},
		Surject: func(y uint64) uint64 {
			x := child.Surject(y)
			x = (x - c) & mask
			if neg {
				x = (-x) & mask
			}
			return x
		},
	}
}
