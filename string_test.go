package obf

import (
	"strings"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	resetConfigForTest(t, 0x5eed)

	cases := []string{
		"",
		"hi",
		strings.Repeat("a", MaxStringLength),
		"with\x00an\x00embedded\x00nul",
	}
	for _, c := range cases {
		s := Str(c, 3)
		if got := s.Get(); got != c {
			t.Fatalf("round trip failed for %q: got %q", c, got)
		}
	}
}

func TestStringOverLengthPanics(t *testing.T) {
	resetConfigForTest(t, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Str to panic for a 40-byte literal")
		}
	}()
	Str("0123456789012345678901234567890123456789", 2) // 40 bytes, over the 32-byte limit
}

func TestStringDebugPassThrough(t *testing.T) {
	resetConfigForTest(t, 0)
	configMu.Lock()
	config.Configured = false
	configMu.Unlock()

	s := Str("debug mode", 4)
	if s.Get() != "debug mode" {
		t.Fatalf("debug pass-through string mismatch: got %q", s.Get())
	}
}
