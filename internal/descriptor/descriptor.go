// Package descriptor implements the per-version cost metadata and the
// weighted budget splitter spec.md §4.1 describes: each version in
// internal/bijection advertises a Descriptor, and a parent node uses Split to
// divide its remaining cycle budget across however many children the chosen
// version needs.
package descriptor

import "github.com/veilforge/obf/internal/rng"

// Descriptor is one catalog entry's selection metadata.
//
// Weight == 0 makes a version unavailable for the current (T, context)
// combination — versions report this themselves (e.g. any version requiring
// width(T) >= 16 reports Weight 0 when T is uint8).
type Descriptor struct {
	Recursive bool
	MinCycles int
	Weight    int
}

// Available reports whether d can be selected at all.
func (d Descriptor) Available() bool {
	return d.Weight > 0
}

// Fits reports whether d can be selected out of the given remaining budget.
func (d Descriptor) Fits(budget int) bool {
	return d.Available() && d.MinCycles <= budget
}

// RandomObfFromList mirrors obf_random_obf_from_list: filter to descriptors
// that fit budget and aren't exclude, prefer recursive candidates over
// non-recursive ones if any recursive candidate survives, then weighted-pick
// among the survivors. It panics if no candidate remains — spec.md §7 treats
// an unsatisfiable budget as a hard "compilation" failure, which in this
// runtime-tree-construction model surfaces as a panic the first time the
// offending site is built.
func RandomObfFromList(s rng.State, budget int, descriptors []Descriptor, exclude int) int {
	recursiveWeights := make([]int, len(descriptors))
	anyWeights := make([]int, len(descriptors))
	haveRecursive := false

	for i, d := range descriptors {
		if i == exclude || !d.Fits(budget) {
			continue
		}
		anyWeights[i] = d.Weight
		if d.Recursive {
			recursiveWeights[i] = d.Weight
			haveRecursive = true
		}
	}

	if haveRecursive {
		return rng.RandomFromList(s, recursiveWeights)
	}

	total := 0
	for _, w := range anyWeights {
		total += w
	}
	if total == 0 {
		panic("obf: no bijection version satisfies the remaining cycle budget; request a larger tier")
	}
	return rng.RandomFromList(s, anyWeights)
}
