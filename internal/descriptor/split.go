package descriptor

import "github.com/veilforge/obf/internal/rng"

// Split divides budget across len(mins) children. Every child first receives
// its own floor (mins[i]); any leftover is then distributed in proportion to
// each child's randomly perturbed weight, mirroring obf_random_split. The
// result never drops a child below its floor. When budget covers the sum of
// the floors the result sums to exactly budget; otherwise every child gets
// just its floor and the total exceeds budget.
func Split(s rng.State, budget int, mins []int, weights []int) []int {
	n := len(mins)
	out := make([]int, n)

	floor := 0
	for i := 0; i < n; i++ {
		out[i] = mins[i]
		floor += mins[i]
	}

	leftover := budget - floor
	if leftover <= 0 {
		return out
	}

	perturbed := make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		s = s.StepN(1)
		perturbed[i] = rng.RandomPerturb(s, weights[i]) + 1 // '+1' avoids an all-zero split
		total += perturbed[i]
	}

	distributed := 0
	for i := 0; i < n; i++ {
		share := leftover * perturbed[i] / total
		out[i] += share
		distributed += share
	}

	// Any remainder from integer division goes to the first child; it is
	// never more than n-1 cycles and never violates a floor.
	out[0] += leftover - distributed

	return out
}
