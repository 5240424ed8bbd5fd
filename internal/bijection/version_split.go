package bijection

import "github.com/veilforge/obf/internal/descriptor"

// splitVersion is V5: split x into halves and obfuscate each independently
// under its own recursive half-width context, with no further full-width
// wrap — reconstruction happens only in surjection. The spec's structured
// pair {lo, hi} is represented here as a single T-width value (lo packed
// into the low bits, hi into the high bits): nothing in this engine ever
// recurses into V5's output, so the pair never needs to survive as two
// separate values past this point. Only available when width(T) >= 16.
type splitVersion struct{}

func (splitVersion) Name() string { return "v5_split" }

func (splitVersion) Descriptor(width Width) descriptor.Descriptor {
	if !width.HasHalf() {
		return descriptor.Descriptor{Weight: 0}
	}
	return descriptor.Descriptor{Recursive: false, MinCycles: 2, Weight: 2}
}

func (splitVersion) Build(bc BuildCtx) Node {
	mask := bc.Width.Mask()
	half := bc.Width.Half()
	halfMask := half.Mask()
	shift := uint(half)

	shares := descriptor.Split(bc.State.Step(), bc.Budget, []int{1, 1}, []int{1, 1})

	loCtx := bc.Ctx.Recurse()
	hiCtx := bc.Ctx.Recurse()
	loNode := bc.RecurseRoot(half, loCtx, bc.State.StepN(2), shares[0])
	hiNode := bc.RecurseRoot(half, hiCtx, bc.State.StepN(3), shares[1])

	return Node{
		Inject: func(x uint64) uint64 {
			x &= mask
			hi := (x >> shift) & halfMask
			lo := x & halfMask
			loP := loNode.Inject(lo) & halfMask
			hiP := hiNode.Inject(hi) & halfMask
			return ((hiP << shift) | loP) & mask
		},
		Surject: func(y uint64) uint64 {
			y &= mask
			hiP := (y >> shift) & halfMask
			loP := y & halfMask
			lo := loNode.Surject(loP) & halfMask
			hi := hiNode.Surject(hiP) & halfMask
			return ((hi << shift) | lo) & mask
		},
	}
}
