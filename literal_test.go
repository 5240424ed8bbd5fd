package obf

import "testing"

func TestLiteralRoundTrip(t *testing.T) {
	resetConfigForTest(t, 0x1337)

	// Each tier gets its own call expression, each on its own line, rather
	// than a loop: a site's tree is built once, at its own source line, so
	// looping one L() call over several tiers would only ever build the
	// first tier's tree and silently reuse it for the rest.
	l0 := L[uint32](0xcafebabe, 0)
	l1 := L[uint32](0xcafebabe, 1)
	l2 := L[uint32](0xcafebabe, 2)
	l3 := L[uint32](0xcafebabe, 3)

	for tier, l := range []Literal[uint32]{l0, l1, l2, l3} {
		if l.Get() != 0xcafebabe {
			t.Fatalf("tier %d: literal round trip failed, got %x", tier, l.Get())
		}
	}
}

func TestLiteralAntiDebugContext(t *testing.T) {
	resetConfigForTest(t, 0x2024)
	configMu.Lock()
	config.AntiDebug = true
	configMu.Unlock()

	l := L[uint16](4242, 2)
	if l.Get() != 4242 {
		t.Fatalf("anti-debug literal round trip failed (no debugger attached), got %d", l.Get())
	}
}
