package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempPolicy(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".obfpolicy.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp policy: %v", err)
	}
	return path
}

func TestLoadAndTierFor(t *testing.T) {
	path := writeTempPolicy(t, `
requires: ">=1.0.0"
rules:
  - pattern: "secrets_*.go"
    tier: 5
    context: antidebug
  - pattern: "*.go"
    tier: 1
`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tier, ok := f.TierFor("secrets_license.go")
	if !ok || tier != 5 {
		t.Fatalf("expected tier 5 for secrets_license.go, got %d, ok=%v", tier, ok)
	}
	ctx, ok := f.ContextFor("secrets_license.go")
	if !ok || ctx != "antidebug" {
		t.Fatalf("expected context antidebug, got %q, ok=%v", ctx, ok)
	}

	tier, ok = f.TierFor("plain.go")
	if !ok || tier != 1 {
		t.Fatalf("expected fallback tier 1 for plain.go, got %d, ok=%v", tier, ok)
	}

	_, ok = f.TierFor("readme.md")
	if ok {
		t.Fatalf("expected no match for readme.md")
	}
}

func TestCheckCompatible(t *testing.T) {
	f := &File{Requires: ">=1.0.0, <2.0.0"}
	if err := f.CheckCompatible("1.0.0"); err != nil {
		t.Fatalf("expected 1.0.0 to satisfy constraint: %v", err)
	}
	if err := f.CheckCompatible("2.5.0"); err == nil {
		t.Fatalf("expected 2.5.0 to violate constraint")
	}
}

func TestCheckCompatibleEmptyRequires(t *testing.T) {
	f := &File{}
	if err := f.CheckCompatible("anything-goes, literally"); err != nil {
		t.Fatalf("empty requires should always be compatible, got %v", err)
	}
}
