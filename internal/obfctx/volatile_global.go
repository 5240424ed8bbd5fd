package obfctx

import "github.com/veilforge/obf/internal/wire"

// volatileGlobalCtx adds the fixed constant C on injection and subtracts it
// back on surjection, reading C from a process-wide cell instead of the
// immediate itself so a compiler cannot assume the cell still holds its
// initial value and fold the two operations away.
type volatileGlobalCtx struct {
	c *cell
	C uint64
}

// NewVolatileGlobal returns a fresh VolatileGlobal context carrying C.
func NewVolatileGlobal(C uint64) Context {
	return volatileGlobalCtx{c: newCell(C), C: C}
}

func (g volatileGlobalCtx) Name() string              { return "volatile_global" }
func (volatileGlobalCtx) ContextCycles() int          { return 1 }
func (volatileGlobalCtx) Narrow() Context             { return identityCtx{} }
func (g volatileGlobalCtx) Recurse() Context          { return NewVolatileGlobal(g.C) }
func (volatileGlobalCtx) NestedLiteralBudget(int) int { return 0 }

func (g volatileGlobalCtx) FinalInject(width wire.Width, x uint64) uint64 {
	return (x + g.C) & width.Mask()
}

func (g volatileGlobalCtx) FinalSurject(width wire.Width, y uint64) uint64 {
	return (y - g.c.load()) & width.Mask()
}
