package rng

// RandomFromList returns an index into weights, chosen with probability
// proportional to weights[i], using one draw from s. A weight of zero is
// never selected (unless every weight is zero, which callers must not pass).
func RandomFromList(s State, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	ref := WeakRandom(s, uint64(total))
	var running uint64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		running += uint64(w)
		if ref < running {
			return i
		}
	}
	return len(weights) - 1
}

// RandomPerturb returns weight scaled by a small random factor in [1,4],
// used by Split (internal/descriptor) to avoid handing every child an
// identical share of leftover budget.
func RandomPerturb(s State, weight int) int {
	if weight <= 0 {
		return 0
	}
	return weight * (1 + WeakRandomInt(s, 4))
}
