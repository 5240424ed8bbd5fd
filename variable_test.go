package obf

import "testing"

func TestVariableArithmeticEquivalence(t *testing.T) {
	resetConfigForTest(t, 0xc0ffee)

	plain := uint32(100)
	v := V[uint32](100, 3)

	ops := []struct {
		name string
		plain func(uint32) uint32
		obf   func(*Variable[uint32]) uint32
	}{
		{"add", func(x uint32) uint32 { return x + 7 }, func(v *Variable[uint32]) uint32 { return v.Add(7) }},
		{"sub", func(x uint32) uint32 { return x - 3 }, func(v *Variable[uint32]) uint32 { return v.Sub(3) }},
		{"mul", func(x uint32) uint32 { return x * 2 }, func(v *Variable[uint32]) uint32 { return v.Mul(2) }},
		{"inc", func(x uint32) uint32 { return x + 1 }, func(v *Variable[uint32]) uint32 { return v.Inc() }},
		{"dec", func(x uint32) uint32 { return x - 1 }, func(v *Variable[uint32]) uint32 { return v.Dec() }},
	}

	for _, op := range ops {
		plain = op.plain(plain)
		got := op.obf(v)
		if got != plain {
			t.Fatalf("%s: obfuscated variable diverged from plain arithmetic: got %d want %d", op.name, got, plain)
		}
		if v.Get() != plain {
			t.Fatalf("%s: Get() diverged after op: got %d want %d", op.name, v.Get(), plain)
		}
	}
}

func TestVariableComparisons(t *testing.T) {
	resetConfigForTest(t, 42)
	v := V[uint16](10, 2)

	if !v.Equal(10) {
		t.Fatalf("Equal(10) should be true")
	}
	if !v.Less(20) {
		t.Fatalf("Less(20) should be true")
	}
	if v.Less(5) {
		t.Fatalf("Less(5) should be false")
	}
}

func TestVariableDebugPassThrough(t *testing.T) {
	resetConfigForTest(t, 0)
	configMu.Lock()
	config.Configured = false
	configMu.Unlock()

	v := V[uint64](123456789, 5)
	if v.Get() != 123456789 {
		t.Fatalf("debug pass-through should store the plain value unchanged, got %d", v.Get())
	}
	if v.node.Inject(5) != 5 {
		t.Fatalf("debug pass-through should use the identity bijection")
	}
}

func TestVariableRoundTripsAcrossWidths(t *testing.T) {
	resetConfigForTest(t, 0xabcdef)

	v8 := V[uint8](200, 2)
	if v8.Get() != 200 {
		t.Fatalf("uint8 variable round trip failed: got %d", v8.Get())
	}

	v64 := V[uint64](0xdeadbeefcafef00d, 6)
	if v64.Get() != 0xdeadbeefcafef00d {
		t.Fatalf("uint64 variable round trip failed: got %x", v64.Get())
	}
}
