package bijection

import (
	"github.com/veilforge/obf/internal/descriptor"
)

// feistelVersion is V2: split x into halves, perturb the high half by a
// non-reversible function of the low half, then recurse on the
// recombined value. Only available when width(T) >= 16, since it needs two
// nonzero halves to operate on.
type feistelVersion struct{}

func (feistelVersion) Name() string { return "v2_feistel" }

func (feistelVersion) Descriptor(width Width) descriptor.Descriptor {
	if !width.HasHalf() {
		return descriptor.Descriptor{Weight: 0}
	}
	return descriptor.Descriptor{Recursive: true, MinCycles: 2, Weight: 5}
}

func (feistelVersion) Build(bc BuildCtx) Node {
	mask := bc.Width.Mask()
	half := bc.Width.Half()
	halfMask := half.Mask()
	shift := uint(half)

	f := PickInnerFn(bc.State.Step())

	childBudget := bc.Budget - 2
	if childBudget < 0 {
		childBudget = 0
	}
	child := bc.RecurseSame(bc.State.StepN(2), childBudget, -1)

	return Node{
		Inject: func(x uint64) uint64 {
			x &= mask
			hi := (x >> shift) & halfMask
			lo := x & halfMask
			hiP := (hi + f(lo, half)) & halfMask
			y0 := ((hiP << shift) | lo) & mask
			return child.Inject(y0)
		},
		Surject: func(y uint64) uint64 {
			y0 := child.Surject(y) & mask
			hiP := (y0 >> shift) & halfMask
			lo := y0 & halfMask
			hi := (hiP - f(lo, half)) & halfMask
			return ((hi << shift) | lo) & mask
		},
	}
}
