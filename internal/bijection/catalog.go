// Package bijection implements the catalog of primitive, composable
// injection/surjection pairs (V0-V6) spec.md §4.2 describes, plus the
// non-reversible inner-function helper V2's Feistel round uses. The
// catalog is open to extension: adding a version amounts to appending one
// row to Versions and one arm to the Build dispatch it carries - nothing
// elsewhere in the engine needs to change.
package bijection

import (
	"github.com/veilforge/obf/internal/descriptor"
	"github.com/veilforge/obf/internal/obfctx"
	"github.com/veilforge/obf/internal/rng"
	"github.com/veilforge/obf/internal/wire"
)

// Width, Node and Unsigned are the shared wire-level types every version
// operates on; re-exported here so callers outside this package only ever
// import bijection, not bijection and wire both.
type (
	Width    = wire.Width
	Node     = wire.Node
	Unsigned = wire.Unsigned
)

const (
	W8  = wire.W8
	W16 = wire.W16
	W32 = wire.W32
	W64 = wire.W64
)

// Identity and Compose forward to the wire package for the same reason.
func Identity() Node                                 { return wire.Identity() }
func Compose(outer, inner Node, width Width) Node     { return wire.Compose(outer, inner, width) }

// RecurseSame builds a pure catalog node at the same width, keeping the
// version index passed as exclude out of that dispatch; V1 and V4 pass their
// own index so they never immediately recurse into themselves, while the
// other recursive versions pass -1. RecurseRoot builds a full root-level tree (catalog plus the
// context's own wrap) at the given width and context, for versions that
// hand a sub-value off to its own concealment (V3/V5/V6's halves, V4's
// nested CINV literal). Both are supplied by internal/tree, which is the
// only package that imports both bijection and the top-level dispatcher
// logic; bijection itself never calls back into tree directly, breaking
// what would otherwise be an import cycle.
type (
	RecurseSame func(s rng.State, budget int, exclude int) Node
	RecurseRoot func(width Width, ctx obfctx.Context, s rng.State, budget int) Node
)

// BuildCtx carries everything a single version needs to construct its Node:
// its own random state and budget, the context of the node currently being
// built (needed only by versions that hand a sub-value to a nested
// context), and the two recursion callbacks above.
type BuildCtx struct {
	State   rng.State
	Budget  int
	Width   Width
	Exclude int
	Ctx     obfctx.Context
	Consts  rng.Constants

	RecurseSame RecurseSame
	RecurseRoot RecurseRoot
}

// Version is one catalog entry.
type Version interface {
	// Name identifies the version for diagnostics.
	Name() string

	// Descriptor reports this version's selection metadata for the given
	// width; Weight 0 makes it unavailable (e.g. any version requiring
	// width >= 16 reports Weight 0 for W8).
	Descriptor(width Width) descriptor.Descriptor

	// Build constructs the Node. bc.Exclude is the exclusion the dispatcher
	// applied when it picked this version; a version that must not be
	// re-selected by its own same-width child passes its own index to
	// RecurseSame explicitly.
	Build(bc BuildCtx) Node
}

// TODO(v7): the original catalog's commented-out one-bit-rotation version
// never shipped even there; nothing documents why, so it stays unimplemented
// here rather than inventing a design for it.

// Version indices, stable across the life of the catalog; version_*.go
// files each implement one of these.
const (
	V0 = iota
	V1
	V2
	V3
	V4
	V5
	V6
)

// Versions is the fixed catalog table.
var Versions = []Version{
	V0: identityVersion{},
	V1: addVersion{},
	V2: feistelVersion{},
	V3: splitJoinVersion{},
	V4: multiplyVersion{},
	V5: splitVersion{},
	V6: lowHalfVersion{},
}

// Descriptors computes every version's descriptor for width, in catalog
// order, ready to hand to descriptor.RandomObfFromList.
func Descriptors(width Width) []descriptor.Descriptor {
	out := make([]descriptor.Descriptor, len(Versions))
	for i, v := range Versions {
		out[i] = v.Descriptor(width)
	}
	return out
}
