package obfctx

import "github.com/veilforge/obf/internal/wire"

// identityCtx is the zero-cost context: no wrapper at all. It is also what
// Narrow collapses any literal context down to at a half-width sub-value.
type identityCtx struct{}

// Identity returns the zero-cost context.
func Identity() Context { return identityCtx{} }

func (identityCtx) Name() string           { return "identity" }
func (identityCtx) ContextCycles() int     { return 0 }
func (identityCtx) Narrow() Context        { return identityCtx{} }
func (identityCtx) Recurse() Context       { return identityCtx{} }
func (identityCtx) NestedLiteralBudget(int) int {
	return 0
}

func (identityCtx) FinalInject(_ wire.Width, x uint64) uint64  { return x }
func (identityCtx) FinalSurject(_ wire.Width, x uint64) uint64 { return x }
