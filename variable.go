package obf

import (
	"github.com/veilforge/obf/internal/bijection"
	"github.com/veilforge/obf/internal/obfctx"
)

// Variable is an obfuscated T: its in-memory representation is whatever its
// call site's bijection tree produced, and every read/write round-trips
// through it. Arithmetic is expressed in terms of Get/Set, so it observes
// exactly the results plain T arithmetic would (spec.md §8 property 4).
type Variable[T bijection.Unsigned] struct {
	node   bijection.Node
	stored uint64
}

// V constructs a Variable holding initial, obfuscated under a tree built
// for tier e at this call site.
func V[T bijection.Unsigned](initial T, e int) *Variable[T] {
	width := bijection.WidthOf[T]()
	node := buildSite(width, obfctx.NewVariable(), e, 1, 0)
	v := &Variable[T]{node: node}
	v.Set(initial)
	return v
}

// Get recovers the plain value.
func (v *Variable[T]) Get() T {
	return T(v.node.Surject(v.stored))
}

// Set overwrites the value.
func (v *Variable[T]) Set(x T) {
	v.stored = v.node.Inject(uint64(x))
}

// Add adds delta, stores, and returns the new value.
func (v *Variable[T]) Add(delta T) T {
	result := v.Get() + delta
	v.Set(result)
	return result
}

// Sub subtracts delta, stores, and returns the new value.
func (v *Variable[T]) Sub(delta T) T {
	result := v.Get() - delta
	v.Set(result)
	return result
}

// Mul multiplies by factor, stores, and returns the new value.
func (v *Variable[T]) Mul(factor T) T {
	result := v.Get() * factor
	v.Set(result)
	return result
}

// Inc increments by one, stores, and returns the new value.
func (v *Variable[T]) Inc() T { return v.Add(1) }

// Dec decrements by one, stores, and returns the new value.
func (v *Variable[T]) Dec() T { return v.Sub(1) }

// Equal reports whether the current value equals other.
func (v *Variable[T]) Equal(other T) bool { return v.Get() == other }

// Less reports whether the current value is less than other.
func (v *Variable[T]) Less(other T) bool { return v.Get() < other }
