package obfctx

import (
	"github.com/veilforge/obf/internal/descriptor"
	"github.com/veilforge/obf/internal/rng"
	"github.com/veilforge/obf/internal/wire"
)

// literalCycles are the fixed ContextCycles floors of the five literal
// contexts, in selection order, mirrored here so ChooseLiteralContext can
// build its descriptor table without constructing every candidate.
var literalCycles = [5]int{0, 1, 2, 2, 3}
var literalWeights = [5]int{4, 3, 2, 2, 1}

// ChooseLiteralContext picks one of the five literal contexts (spec.md
// §4.3's Identity/VolatileGlobal/AliasedPointers/AntiDebug/MutatingGlobal,
// versions 0-4), weighted, restricted to those whose ContextCycles fits
// within budget. It always succeeds: Identity's floor is 0, so it is
// always a candidate.
func ChooseLiteralContext(s rng.State, width wire.Width, budget int, consts rng.Constants) Context {
	descs := make([]descriptor.Descriptor, len(literalCycles))
	for i := range literalCycles {
		descs[i] = descriptor.Descriptor{Recursive: false, MinCycles: literalCycles[i], Weight: literalWeights[i]}
	}
	idx := descriptor.RandomObfFromList(s, budget, descs, -1)

	switch idx {
	case 0:
		return Identity()
	case 1:
		return NewVolatileGlobal(uint64(consts.C))
	case 2:
		return NewAliasedPointers()
	case 3:
		return NewAntiDebug()
	default:
		return NewMutatingGlobal(s, width, consts)
	}
}
