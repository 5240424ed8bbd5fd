package tree

import (
	"sync"
	"testing"

	"github.com/veilforge/obf/internal/bijection"
	"github.com/veilforge/obf/internal/obfctx"
	"github.com/veilforge/obf/internal/rng"
)

func tierBudget(e int) int {
	cycles := 1
	for i := 0; i < e; i++ {
		if i%2 == 1 {
			cycles *= 10
		} else {
			cycles *= 3
		}
	}
	return cycles
}

func TestBuildRoundTripExhaustiveU8(t *testing.T) {
	ctx := obfctx.NewVariable()
	seed := rng.State(0x1234)
	consts := rng.DeriveConstants(uint64(seed))
	node := Build(bijection.W8, ctx, consts, seed, tierBudget(4))

	for x := 0; x <= 0xff; x++ {
		y := node.Inject(uint64(x))
		got := node.Surject(y)
		if got != uint64(x) {
			t.Fatalf("round trip failed for x=%d: inject=%d surject=%d", x, y, got)
		}
	}
}

func TestBuildRoundTripExhaustiveU16(t *testing.T) {
	ctx := obfctx.NewVariable()
	seed := rng.State(0xdeadbeef)
	consts := rng.DeriveConstants(uint64(seed))
	node := Build(bijection.W16, ctx, consts, seed, tierBudget(4))

	for x := 0; x <= 0xffff; x++ {
		y := node.Inject(uint64(x))
		got := node.Surject(y)
		if got != uint64(x) {
			t.Fatalf("round trip failed for x=%d: inject=%d surject=%d", x, y, got)
		}
	}
}

func TestBuildRoundTripSampledU32(t *testing.T) {
	ctx := obfctx.NewVariable()
	seed := rng.State(777)
	consts := rng.DeriveConstants(uint64(seed))
	node := Build(bijection.W32, ctx, consts, seed, tierBudget(6))

	s := rng.State(42)
	for i := 0; i < 200000; i++ {
		s = s.Step()
		x := uint64(s) & bijection.W32.Mask()
		y := node.Inject(x)
		got := node.Surject(y)
		if got != x {
			t.Fatalf("round trip failed for x=%d: inject=%d surject=%d", x, y, got)
		}
	}
}

func TestBuildIsDeterministicForSameSeed(t *testing.T) {
	seed := rng.State(99)
	consts := rng.DeriveConstants(uint64(seed))
	a := Build(bijection.W32, obfctx.NewVariable(), consts, seed, tierBudget(5))
	b := Build(bijection.W32, obfctx.NewVariable(), consts, seed, tierBudget(5))

	for i := uint64(0); i < 5000; i++ {
		if a.Inject(i) != b.Inject(i) {
			t.Fatalf("two trees built from the same seed disagree at x=%d", i)
		}
	}
}

func TestBuildDiffersAcrossSeeds(t *testing.T) {
	consts := rng.DeriveConstants(1)
	a := Build(bijection.W32, obfctx.NewVariable(), consts, rng.State(1), tierBudget(5))
	b := Build(bijection.W32, obfctx.NewVariable(), consts, rng.State(2), tierBudget(5))

	differed := false
	for i := uint64(0); i < 1000; i++ {
		if a.Inject(i) != b.Inject(i) {
			differed = true
			break
		}
	}
	if !differed {
		t.Fatalf("trees built from different seeds produced identical injections over 1000 samples")
	}
}

func TestBuildPanicsOnUnsatisfiableBudget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a zero-cycle budget under a costly context")
		}
	}()
	consts := rng.DeriveConstants(1)
	ctx := obfctx.NewMutatingGlobal(rng.State(1), bijection.W32, consts)
	Build(bijection.W32, ctx, consts, rng.State(1), 0)
}

// TestConcurrentReadsOfMemoizedTree exercises the concurrency property
// spec.md §8 requires: many goroutines reading the same already-built tree
// concurrently must never see a torn or incorrect round trip, regardless of
// the strict_mt/relaxed cell policy compiled in.
func TestConcurrentReadsOfMemoizedTree(t *testing.T) {
	consts := rng.DeriveConstants(555)
	node := Build(bijection.W32, obfctx.NewVariable(), consts, rng.State(555), tierBudget(5))

	const goroutines = 8
	const perGoroutine = 125000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(base uint64) {
			defer wg.Done()
			for i := uint64(0); i < perGoroutine; i++ {
				x := (base + i*2654435761) & bijection.W32.Mask()
				y := node.Inject(x)
				if node.Surject(y) != x {
					t.Errorf("concurrent round trip failed for x=%d", x)
					return
				}
			}
		}(uint64(g) * 1_000_003)
	}
	wg.Wait()
}
