//go:build !strict_mt

package obfctx

// cell is the storage a context round-trips a value through to model a
// global (VolatileGlobal, AliasedPointers, MutatingGlobal). The relaxed
// (default) policy uses a plain, deliberately unsynchronized word: spec.md
// treats concurrent sites racing on a shared global as an accepted
// tradeoff of this build mode, not a bug.
type cell struct {
	v uint64
}

func newCell(initial uint64) *cell {
	return &cell{v: initial}
}

func (c *cell) store(v uint64) { c.v = v }
func (c *cell) load() uint64   { return c.v }

func (c *cell) swap(v uint64) uint64 {
	old := c.v
	c.v = v
	return old
}
