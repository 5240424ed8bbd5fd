// Package wire defines the width-tagged uint64 representation every other
// internal package builds on. A generic Bijection[T] cannot derive "half the
// bit width of T" from T alone, so the whole engine does its arithmetic on
// plain uint64 values carrying an explicit Width tag, and only the public
// API (package obf) narrows back down to a concrete T at the boundary.
package wire

import "golang.org/x/exp/constraints"

// Width is the bit width of the unsigned integer type a Node operates on.
type Width int

const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// Mask returns the bitmask covering exactly w bits.
func (w Width) Mask() uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(w)) - 1
}

// HasHalf reports whether w can be split into two equal, nonzero halves.
func (w Width) HasHalf() bool {
	return w >= W16
}

// Half returns the width of one half of w. Only valid when HasHalf is true.
func (w Width) Half() Width {
	return w / 2
}

// Unsigned is the exact set of integer types the engine supports. It is
// intentionally not a ~-approximate constraint: WidthOf switches on the
// concrete type via a type assertion, which requires the named types
// themselves to be part of the type set, not merely types sharing their
// underlying kind.
type Unsigned interface {
	constraints.Unsigned
	uint8 | uint16 | uint32 | uint64
}

// WidthOf returns the bit width of T.
func WidthOf[T Unsigned]() Width {
	var z T
	switch any(z).(type) {
	case uint8:
		return W8
	case uint16:
		return W16
	case uint32:
		return W32
	default:
		return W64
	}
}

// Node is one layer of a composed bijection: Inject conceals a plain value,
// Surject recovers it. Every Node in the engine satisfies
// Surject(Inject(x)) == x for all x representable in its width.
type Node struct {
	Inject  func(uint64) uint64
	Surject func(uint64) uint64
}

// Identity is the zero-cost Node: it conceals nothing.
func Identity() Node {
	return Node{
		Inject:  func(x uint64) uint64 { return x },
		Surject: func(x uint64) uint64 { return x },
	}
}

// Compose wraps inner with outer: injection applies inner first, then
// outer; surjection undoes outer first, then inner. Both are masked to
// width so composing a shorter-width Node with a wider one never leaks
// high bits.
func Compose(outer, inner Node, width Width) Node {
	mask := width.Mask()
	return Node{
		Inject: func(x uint64) uint64 {
			return outer.Inject(inner.Inject(x&mask)&mask) & mask
		},
		Surject: func(y uint64) uint64 {
			return inner.Surject(outer.Surject(y&mask)&mask) & mask
		},
	}
}
