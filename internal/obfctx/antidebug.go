package obfctx

import (
	"math/big"

	"github.com/veilforge/obf/internal/probe"
	"github.com/veilforge/obf/internal/wire"
)

// antiDebugCtx multiplies by 1+probe.Byte(): injection uses the multiplier
// sampled at construction, and surjection samples the probe again on every
// call and multiplies by the inverse of what it reads. Off a debugger,
// probe.Byte() is 0 both times and the multiplier is the invertible identity
// 1. When the debugger state at read time differs from the one at
// construction the two multipliers differ and the recovered value comes out
// wrong; that is the intended behavior of this context, not a bug to guard
// against.
type antiDebugCtx struct {
	c, cInv uint64
}

// NewAntiDebug returns a fresh AntiDebug context.
func NewAntiDebug() Context {
	c := uint64(1 + probe.Byte())
	return antiDebugCtx{c: c, cInv: modInverseOrOne(c, 64)}
}

func (antiDebugCtx) Name() string                { return "anti_debug" }
func (antiDebugCtx) ContextCycles() int          { return 2 }
func (antiDebugCtx) Narrow() Context              { return identityCtx{} }
func (a antiDebugCtx) Recurse() Context           { return NewAntiDebug() }
func (antiDebugCtx) NestedLiteralBudget(int) int { return 0 }

func (a antiDebugCtx) FinalInject(width wire.Width, x uint64) uint64 {
	return (x * a.c) & width.Mask()
}

func (a antiDebugCtx) FinalSurject(width wire.Width, y uint64) uint64 {
	cInv := a.cInv
	if m := uint64(1 + probe.Byte()); m != a.c {
		cInv = modInverseOrOne(m, 64)
	}
	return (y * cInv) & width.Mask()
}

// modInverseOrOne returns the multiplicative inverse of c modulo 2^bits, or
// 1 if c is even and therefore not a unit. probe.Byte() returns 0 or 2, so
// the multipliers this context passes in (1 or 3) are always odd and the
// fallback is not reached with the current probe.
func modInverseOrOne(c uint64, bits uint) uint64 {
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(c), mod)
	if inv == nil {
		return 1
	}
	return inv.Uint64()
}
