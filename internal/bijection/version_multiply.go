package bijection

import (
	"math/big"

	"github.com/veilforge/obf/internal/descriptor"
	"github.com/veilforge/obf/internal/obfctx"
	"github.com/veilforge/obf/internal/rng"
)

// multiplyVersion is V4: pick an odd C from {A, B, C}, compute its modular
// inverse CINV mod 2^width(T), inject by multiplying by CINV and recursing
// on one child, and surject by undoing the child and multiplying by C. Every
// candidate in rng.ConstantPool is odd, so CINV always exists. CINV is
// concealed behind a nested literal built under the current context's own
// hook rather than captured as a bare constant, and V4 excludes itself from
// re-selection on its child.
type multiplyVersion struct{}

func (multiplyVersion) Name() string { return "v4_multiply" }

func (multiplyVersion) Descriptor(Width) descriptor.Descriptor {
	return descriptor.Descriptor{Recursive: true, MinCycles: 2, Weight: 4}
}

func (multiplyVersion) Build(bc BuildCtx) Node {
	mask := bc.Width.Mask()
	bits := uint(bc.Width)

	candidates := [3]uint64{uint64(bc.Consts.A), uint64(bc.Consts.B), uint64(bc.Consts.C)}
	c := candidates[rng.WeakRandomInt(bc.State.Step(), len(candidates))]
	cInv := modInverse(c, bits)

	litBudget := bc.Ctx.NestedLiteralBudget(bc.Budget)
	litCtx := obfctx.ChooseLiteralContext(bc.State.StepN(2), bc.Width, litBudget, bc.Consts)
	litNode := bc.RecurseRoot(bc.Width, litCtx, bc.State.StepN(3), litBudget)
	storedCInv := litNode.Inject(cInv) & mask

	childBudget := bc.Budget - 2 - litBudget
	if childBudget < 0 {
		childBudget = 0
	}
	child := bc.RecurseSame(bc.State.StepN(4), childBudget, V4)

	return Node{
		Inject: func(x uint64) uint64 {
			actualCInv := litNode.Surject(storedCInv) & mask
			y0 := (x * actualCInv) & mask
			return child.Inject(y0)
		},
		Surject: func(y uint64) uint64 {
			y0 := child.Surject(y) & mask
			return (y0 * c) & mask
		},
	}
}

// modInverse returns the multiplicative inverse of odd c modulo 2^bits,
// computed via the extended Euclidean algorithm (math/big.Int.ModInverse).
func modInverse(c uint64, bits uint) uint64 {
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(c), mod)
	if inv == nil {
		// Every candidate in rng.ConstantPool is odd, so this is
		// unreachable: odd values are always units mod a power of two.
		panic("obf: V4 constant must be odd")
	}
	return inv.Uint64()
}
