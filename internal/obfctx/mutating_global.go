package obfctx

import (
	"fmt"

	"github.com/veilforge/obf/internal/rng"
	"github.com/veilforge/obf/internal/wire"
)

// mutatingGlobalCtx is the "Invariant-mutating global" literal context: a
// process-wide cell churns through c <- (c+DELTA) mod DELTAMOD on every
// surjection, while c mod MOD == C holds at every step by construction.
// Injection (compile-time in spec terms) simply adds C; surjection mutates
// the cell and then subtracts (c mod MOD), which the invariant guarantees
// equals C.
type mutatingGlobalCtx struct {
	c        *cell
	C        uint64
	mod      uint64
	delta    uint64
	deltaMod uint64
}

// NewMutatingGlobal returns a fresh MutatingGlobal context for the given
// width, seeded from s and carrying the process-wide constant C.
func NewMutatingGlobal(s rng.State, width wire.Width, consts rng.Constants) Context {
	half := uint64(width) / 2
	ceiling := uint64(1) << half // MOD ranges over [1, 2^(width/2))
	mod := 1 + rng.WeakRandom(s.Step(), ceiling-1)

	mul1 := 1 + rng.WeakRandom(s.StepN(2), 15)
	mul2 := 1 + rng.WeakRandom(s.StepN(3), 15)
	mul3 := 1 + rng.WeakRandom(s.StepN(4), 15)

	delta := mul1 * mod
	deltaMod := mul2 * mod
	if deltaMod == 0 {
		deltaMod = mod
	}

	// C is reduced mod MOD so the invariant "c mod MOD == C" can literally
	// hold: at width(T)=8, MOD may be smaller than the raw global constant,
	// so the value this context actually adds/subtracts is C mod MOD, not
	// the unreduced constant.
	C := uint64(consts.C) % mod
	c0 := (C + mul3*mod) % deltaMod

	verifyMutatingInvariant(c0, mod, delta, deltaMod, C)

	return mutatingGlobalCtx{c: newCell(c0), C: C, mod: mod, delta: delta, deltaMod: deltaMod}
}

// verifyMutatingInvariant walks the recurrence 100 steps and panics if the
// invariant it is supposed to preserve by construction ever breaks; this
// guards against the derivation above being edited inconsistently.
func verifyMutatingInvariant(c0, mod, delta, deltaMod, want uint64) {
	c := c0
	for i := 0; i < 100; i++ {
		if c%mod != want {
			panic(fmt.Sprintf("obf: mutating-global invariant broken at step %d: %d mod %d != %d", i, c, mod, want))
		}
		c = (c + delta) % deltaMod
	}
}

func (mutatingGlobalCtx) Name() string       { return "mutating_global" }
func (mutatingGlobalCtx) ContextCycles() int { return 3 }
func (mutatingGlobalCtx) Narrow() Context    { return identityCtx{} }
func (m mutatingGlobalCtx) Recurse() Context {
	return mutatingGlobalCtx{c: m.c, C: m.C, mod: m.mod, delta: m.delta, deltaMod: m.deltaMod}
}
func (mutatingGlobalCtx) NestedLiteralBudget(int) int { return 0 }

func (m mutatingGlobalCtx) FinalInject(width wire.Width, x uint64) uint64 {
	return (x + m.C) & width.Mask()
}

func (m mutatingGlobalCtx) FinalSurject(width wire.Width, y uint64) uint64 {
	next := (m.c.load() + m.delta) % m.deltaMod
	m.c.store(next)
	return (y - (next % m.mod)) & width.Mask()
}
