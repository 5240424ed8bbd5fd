// Package tree is the dispatcher that ties internal/rng, internal/descriptor,
// internal/bijection and internal/obfctx together into one memoized
// injection/surjection tree per call site, the runtime stand-in for what the
// original library builds via compile-time template recursion (spec.md §4.4,
// §9's "lazily built, memoized tree" design note).
package tree

import (
	"github.com/veilforge/obf/internal/bijection"
	"github.com/veilforge/obf/internal/descriptor"
	"github.com/veilforge/obf/internal/obfctx"
	"github.com/veilforge/obf/internal/rng"
)

// Build constructs a full root-level tree at width, wrapped in ctx's own
// concealment layer: it reserves ctx.ContextCycles() off budget, dispatches
// one catalog version for what remains, and composes that version's Node
// with ctx's FinalInject/FinalSurject.
//
// consts is the process-global A/B/C triple (spec.md §3: "used wherever an
// additive or multiplicative mask is required"). Build never derives its own
// triple from seed — seed varies per call site (and per nested RecurseRoot
// call), so a freshly derived triple would give every site, and every
// nested literal, its own A/B/C instead of the one triple the whole process
// shares. Callers obtain consts once, from the global seed, and thread it
// through every Build call.
//
// This is the one function bijection's versions call back into (via the
// RecurseRoot field of bijection.BuildCtx) whenever they hand a sub-value
// off to its own context — V3 and V5's halves, V6's low half, V4's nested
// CINV literal. Same-width recursion within a single version's own chain
// (V1, V2, V4's outer child, V3/V6's final layer) instead calls buildCatalog
// directly, skipping the context wrap a second time, since only the root of
// a site's tree carries a context.
func Build(width bijection.Width, ctx obfctx.Context, consts rng.Constants, seed rng.State, budget int) bijection.Node {
	reserved := ctx.ContextCycles()
	remaining := budget - reserved
	if remaining < 0 {
		remaining = 0
	}

	inner := buildCatalog(width, ctx, consts, seed.Step(), remaining, -1)

	return bijection.Node{
		Inject: func(x uint64) uint64 {
			return ctx.FinalInject(width, inner.Inject(x))
		},
		Surject: func(y uint64) uint64 {
			return inner.Surject(ctx.FinalSurject(width, y))
		},
	}
}

// buildCatalog dispatches exactly one catalog version, without any
// additional context wrap: it is what same-width recursion inside a
// version's own chain calls, and what Build calls once for the root's own
// layer after reserving the context's floor.
func buildCatalog(width bijection.Width, ctx obfctx.Context, consts rng.Constants, seed rng.State, budget int, exclude int) bijection.Node {
	descs := bijection.Descriptors(width)
	which := descriptor.RandomObfFromList(seed, budget, descs, exclude)
	version := bijection.Versions[which]

	bc := bijection.BuildCtx{
		State:   seed.Step(),
		Budget:  budget,
		Width:   width,
		Exclude: exclude,
		Ctx:     ctx,
		Consts:  consts,
		RecurseSame: func(s rng.State, childBudget int, childExclude int) bijection.Node {
			return buildCatalog(width, ctx, consts, s, childBudget, childExclude)
		},
		RecurseRoot: func(childWidth bijection.Width, childCtx obfctx.Context, s rng.State, childBudget int) bijection.Node {
			return Build(childWidth, childCtx, consts, s, childBudget)
		},
	}
	return version.Build(bc)
}
