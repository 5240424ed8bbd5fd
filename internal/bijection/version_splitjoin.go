package bijection

import (
	"github.com/veilforge/obf/internal/descriptor"
)

// splitJoinVersion is V3: split x into halves, obfuscate each half under its
// own freshly derived half-width context, concatenate the results, then
// recurse on the full width. Only available when width(T) >= 16.
type splitJoinVersion struct{}

func (splitJoinVersion) Name() string { return "v3_split_join" }

func (splitJoinVersion) Descriptor(width Width) descriptor.Descriptor {
	if !width.HasHalf() {
		return descriptor.Descriptor{Weight: 0}
	}
	return descriptor.Descriptor{Recursive: true, MinCycles: 3, Weight: 3}
}

func (splitJoinVersion) Build(bc BuildCtx) Node {
	mask := bc.Width.Mask()
	half := bc.Width.Half()
	halfMask := half.Mask()
	shift := uint(half)

	shares := descriptor.Split(bc.State.Step(), bc.Budget, []int{1, 1, 1}, []int{3, 3, 2})

	loCtx := bc.Ctx.Recurse()
	hiCtx := bc.Ctx.Recurse()
	loNode := bc.RecurseRoot(half, loCtx, bc.State.StepN(2), shares[0])
	hiNode := bc.RecurseRoot(half, hiCtx, bc.State.StepN(3), shares[1])
	child := bc.RecurseSame(bc.State.StepN(4), shares[2], -1)

	return Node{
		Inject: func(x uint64) uint64 {
			x &= mask
			hi := (x >> shift) & halfMask
			lo := x & halfMask
			loP := loNode.Inject(lo) & halfMask
			hiP := hiNode.Inject(hi) & halfMask
			y0 := ((hiP << shift) | loP) & mask
			return child.Inject(y0)
		},
		Surject: func(y uint64) uint64 {
			y0 := child.Surject(y) & mask
			hiP := (y0 >> shift) & halfMask
			loP := y0 & halfMask
			lo := loNode.Surject(loP) & halfMask
			hi := hiNode.Surject(hiP) & halfMask
			return ((hi << shift) | lo) & mask
		},
	}
}
