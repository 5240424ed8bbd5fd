package bijection

import "github.com/veilforge/obf/internal/descriptor"

// lowHalfVersion is V6: obfuscate just the low half of x under a fresh
// half-width context, splice the result back into the full-width value in
// place of the plain low half, then recurse on the full width. Only
// available when width(T) >= 16.
type lowHalfVersion struct{}

func (lowHalfVersion) Name() string { return "v6_low_half" }

func (lowHalfVersion) Descriptor(width Width) descriptor.Descriptor {
	if !width.HasHalf() {
		return descriptor.Descriptor{Weight: 0}
	}
	return descriptor.Descriptor{Recursive: true, MinCycles: 2, Weight: 3}
}

func (lowHalfVersion) Build(bc BuildCtx) Node {
	mask := bc.Width.Mask()
	half := bc.Width.Half()
	halfMask := half.Mask()
	hiMask := mask &^ halfMask

	shares := descriptor.Split(bc.State.Step(), bc.Budget, []int{1, 1}, []int{1, 2})
	loCtx := bc.Ctx.Recurse()
	loNode := bc.RecurseRoot(half, loCtx, bc.State.StepN(2), shares[0])
	child := bc.RecurseSame(bc.State.StepN(3), shares[1], -1)

	return Node{
		Inject: func(x uint64) uint64 {
			x &= mask
			lo := x & halfMask
			loP := loNode.Inject(lo) & halfMask
			y0 := (x & hiMask) | loP
			return child.Inject(y0)
		},
		Surject: func(y uint64) uint64 {
			y0 := child.Surject(y) & mask
			loP := y0 & halfMask
			hiBits := y0 & hiMask
			lo := loNode.Surject(loP) & halfMask
			return hiBits | lo
		},
	}
}
