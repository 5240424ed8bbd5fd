package rng

// ConstantPool is the fixed candidate set spec.md §3 draws A, B, C from.
var ConstantPool = [6]uint8{3, 5, 7, 15, 25, 31}

// Constants holds the three process-global odd constants used wherever an
// additive or multiplicative mask is required by the bijection catalog.
type Constants struct {
	A, B, C uint8
}

// DeriveConstants picks three distinct indices into ConstantPool, seeded from
// globalSeed, for A, B, and C respectively.
func DeriveConstants(globalSeed uint64) Constants {
	a := pickExcept(Mix(globalSeed, 0), ConstantPool[:])
	b := pickExcept(Mix(globalSeed, 1), ConstantPool[:], a)
	c := pickExcept(Mix(globalSeed, 2), ConstantPool[:], a, b)
	return Constants{A: ConstantPool[a], B: ConstantPool[b], C: ConstantPool[c]}
}

// pickExcept draws an index into pool, walking forward past any index in
// excluded until landing on one that isn't.
func pickExcept(s State, pool []uint8, excluded ...int) int {
	idx := WeakRandomInt(s, len(pool))
search:
	for {
		for _, e := range excluded {
			if idx == e {
				idx = (idx + 1) % len(pool)
				continue search
			}
		}
		return idx
	}
}
