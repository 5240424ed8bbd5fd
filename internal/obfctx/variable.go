package obfctx

import "github.com/veilforge/obf/internal/wire"

// variableCtx is the context every obf.Variable[T] site builds under: it
// adds no wrapper of its own (a variable's value changes at runtime, so
// there is nothing analogous to a literal's single constant to conceal
// behind a global or probe byte), but it does hand any V4 nested literal a
// real sub-budget instead of collapsing it to zero-cost.
type variableCtx struct{}

// NewVariable returns the Variable context.
func NewVariable() Context { return variableCtx{} }

func (variableCtx) Name() string       { return "variable" }
func (variableCtx) ContextCycles() int { return 0 }
func (variableCtx) Narrow() Context    { return identityCtx{} }
func (variableCtx) Recurse() Context   { return variableCtx{} }

// NestedLiteralBudget hands a nested literal (e.g. V4's CINV) a real
// fraction of the outer budget, capped at 50, rather than collapsing it to
// the zero-cost identity literal contexts elsewhere. A variable's constants
// are the most worthwhile literals to conceal.
func (variableCtx) NestedLiteralBudget(outer int) int {
	half := outer / 2
	if half > 50 {
		return 50
	}
	return half
}

func (variableCtx) FinalInject(_ wire.Width, x uint64) uint64  { return x }
func (variableCtx) FinalSurject(_ wire.Width, x uint64) uint64 { return x }
