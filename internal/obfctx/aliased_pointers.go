package obfctx

import "github.com/veilforge/obf/internal/wire"

// aliasedPointersCtx leaves injection alone and has surjection subtract the
// result of a small aliased-pointer dance that always evaluates to zero: it
// stores 0, reads that back first, then stores 1 through the same cell
// (modeling a second pointer aliased to the first). The read is always 0
// because it happens before the second store in program order, but a
// compiler that can't prove the two pointers alias can't fold it away.
type aliasedPointersCtx struct {
	p *cell
}

// NewAliasedPointers returns a fresh AliasedPointers context.
func NewAliasedPointers() Context {
	return aliasedPointersCtx{p: newCell(0)}
}

func (aliasedPointersCtx) Name() string              { return "aliased_pointers" }
func (aliasedPointersCtx) ContextCycles() int        { return 2 }
func (aliasedPointersCtx) Narrow() Context           { return identityCtx{} }
func (a aliasedPointersCtx) Recurse() Context        { return NewAliasedPointers() }
func (aliasedPointersCtx) NestedLiteralBudget(int) int { return 0 }

func (aliasedPointersCtx) FinalInject(width wire.Width, x uint64) uint64 {
	return x & width.Mask()
}

func (a aliasedPointersCtx) alwaysZero() uint64 {
	a.p.store(0)
	first := a.p.load()
	a.p.store(1)
	return first
}

func (a aliasedPointersCtx) FinalSurject(width wire.Width, y uint64) uint64 {
	return (y - a.alwaysZero()) & width.Mask()
}
