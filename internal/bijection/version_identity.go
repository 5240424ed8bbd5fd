package bijection

import "github.com/veilforge/obf/internal/descriptor"

// identityVersion is V0: y = x. Non-recursive, trivially cheap, and always
// available regardless of width — it is the catalog's fallback when a
// budget is too small for anything else.
type identityVersion struct{}

func (identityVersion) Name() string { return "v0_identity" }

func (identityVersion) Descriptor(Width) descriptor.Descriptor {
	return descriptor.Descriptor{Recursive: false, MinCycles: 0, Weight: 1}
}

func (identityVersion) Build(BuildCtx) Node {
	return Identity()
}
