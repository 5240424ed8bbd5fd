package bijection

import (
	"testing"

	"github.com/veilforge/obf/internal/obfctx"
	"github.com/veilforge/obf/internal/rng"
)

// buildFixture constructs one version's Node directly (bypassing
// internal/tree) by wiring RecurseSame/RecurseRoot to flat, non-recursive
// fallbacks. This exercises each version's own Inject/Surject logic in
// isolation; internal/tree's own tests cover the full dispatcher including
// genuine multi-level recursion.
func buildFixture(t *testing.T, v Version, width Width, seed rng.State, budget int) Node {
	t.Helper()

	recurseSame := func(s rng.State, budget int, exclude int) Node {
		return Identity()
	}
	recurseRoot := func(w Width, ctx obfctx.Context, s rng.State, budget int) Node {
		return Identity()
	}

	bc := BuildCtx{
		State:   seed,
		Budget:  budget,
		Width:   width,
		Exclude: -1,
		Ctx:     obfctx.NewVariable(),
		Consts:      rng.DeriveConstants(0xabad1dea),
		RecurseSame: recurseSame,
		RecurseRoot: recurseRoot,
	}
	return v.Build(bc)
}

func roundTripCheck(t *testing.T, name string, width Width, n Node) {
	t.Helper()
	mask := width.Mask()
	var samples []uint64
	switch width {
	case W8:
		for x := 0; x <= 0xff; x++ {
			samples = append(samples, uint64(x))
		}
	case W16:
		for x := 0; x <= 0xffff; x += 37 {
			samples = append(samples, uint64(x))
		}
	default:
		for i := 0; i < 5000; i++ {
			samples = append(samples, (uint64(i)*2654435761)&mask)
		}
	}
	for _, x := range samples {
		y := n.Inject(x)
		got := n.Surject(y)
		if got != x {
			t.Fatalf("%s: round trip failed for x=%d: inject=%d surject=%d", name, x, y, got)
		}
	}
}

func TestVersionsRoundTrip(t *testing.T) {
	widths := []Width{W16, W32, W64}
	for _, width := range widths {
		for i, v := range Versions {
			d := v.Descriptor(width)
			if !d.Available() {
				continue
			}
			budget := d.MinCycles + 10
			node := buildFixture(t, v, width, rng.State(uint64(i)+1), budget)
			roundTripCheck(t, v.Name(), width, node)
		}
	}
}

func TestIdentityAlwaysAvailable(t *testing.T) {
	for _, width := range []Width{W8, W16, W32, W64} {
		d := identityVersion{}.Descriptor(width)
		if !d.Available() {
			t.Fatalf("identity must always be available at width %d", width)
		}
	}
}

func TestNarrowWidthVersionsUnavailable(t *testing.T) {
	for _, v := range []Version{feistelVersion{}, splitJoinVersion{}, splitVersion{}, lowHalfVersion{}} {
		d := v.Descriptor(W8)
		if d.Available() {
			t.Fatalf("%s should be unavailable at width 8", v.Name())
		}
	}
}
