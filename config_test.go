package obf

import (
	"errors"
	"testing"
)

func resetConfigForTest(t *testing.T, seed uint64) {
	t.Helper()
	configMu.Lock()
	config = Config{Seed: seed, Configured: true}
	configureCalls = 0
	firstSiteBuilt = false
	configMu.Unlock()

	sitesMu.Lock()
	sites = map[string]*siteEntry{}
	sitesMu.Unlock()
}

func TestConfigureTwicePanics(t *testing.T) {
	resetConfigForTest(t, 1)
	Configure(WithScale(1))

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected Configure to panic on second call")
		}
		if !errors.Is(r.(error), ErrAlreadyConfigured) {
			t.Fatalf("expected ErrAlreadyConfigured, got %v", r)
		}
	}()
	Configure(WithScale(2))
}

func TestConfigureAfterFirstSiteBuiltPanics(t *testing.T) {
	resetConfigForTest(t, 1)
	_ = V[uint32](1, 2)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Configure to panic once a site has been built")
		}
	}()
	Configure(WithScale(1))
}

func TestExpCyclesSequence(t *testing.T) {
	want := []int{1, 3, 10, 30, 100, 300, 1000}
	for n, w := range want {
		if got := expCycles(n); got != w {
			t.Fatalf("expCycles(%d) = %d, want %d", n, got, w)
		}
	}
}

func TestTierBudgetRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected tierBudget to panic for e=7")
		}
	}()
	tierBudget(7, 0)
}
