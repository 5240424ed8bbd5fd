//go:build strict_mt

package obfctx

import "sync/atomic"

// cell is the storage a context round-trips a value through to model a
// global (VolatileGlobal, AliasedPointers, MutatingGlobal). Under the
// strict_mt build tag every cell is an atomic.Uint64, so concurrent sites
// sharing a process never race on the cell's bits.
type cell struct {
	v atomic.Uint64
}

func newCell(initial uint64) *cell {
	c := &cell{}
	c.v.Store(initial)
	return c
}

func (c *cell) store(v uint64) { c.v.Store(v) }
func (c *cell) load() uint64   { return c.v.Load() }

func (c *cell) swap(v uint64) uint64 { return c.v.Swap(v) }
