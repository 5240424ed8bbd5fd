// Package policy loads .obfpolicy.yaml files: a per-repository or
// per-package declaration of which tier and which literal-context flavor
// applies to files matching a glob, plus a minimum-engine-version
// constraint so a policy written for a newer engine fails loudly instead
// of silently being misapplied against an older one.
package policy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Rule binds one glob pattern to an optional tier override and an
// optional named literal-context flavor. Tier is a pointer so "absent"
// (inherit the caller's default) is distinguishable from tier 0.
type Rule struct {
	Pattern string `yaml:"pattern"`
	Tier    *int   `yaml:"tier,omitempty"`
	Context string `yaml:"context,omitempty"`
}

// File is the parsed form of a .obfpolicy.yaml document.
type File struct {
	Requires string `yaml:"requires,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Load reads and parses a policy file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("policy: parse %s: %w", path, err)
	}
	return &f, nil
}

// CheckCompatible reports whether engineVersion satisfies the file's
// Requires constraint. An empty Requires is always compatible.
//
// engineVersion is taken as a plain string, not obf.Version, so this
// package never imports the root obf package - obf will eventually want
// to consult policy, and Go does not allow that cycle the other way.
func (f *File) CheckCompatible(engineVersion string) error {
	if f.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(f.Requires)
	if err != nil {
		return fmt.Errorf("policy: invalid requires constraint %q: %w", f.Requires, err)
	}
	v, err := semver.NewVersion(engineVersion)
	if err != nil {
		return fmt.Errorf("policy: invalid engine version %q: %w", engineVersion, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("policy: engine version %s does not satisfy requires %q", engineVersion, f.Requires)
	}
	return nil
}

// TierFor returns the tier override for the first rule whose pattern
// matches the base name of path, in declaration order. ok is false if no rule matches or
// the matching rule leaves Tier unset.
func (f *File) TierFor(path string) (tier int, ok bool) {
	base := filepath.Base(path)
	for _, r := range f.Rules {
		matched, err := filepath.Match(r.Pattern, base)
		if err != nil || !matched {
			continue
		}
		if r.Tier == nil {
			return 0, false
		}
		return *r.Tier, true
	}
	return 0, false
}

// ContextFor returns the named literal-context override for the first
// rule whose pattern matches path, mirroring TierFor.
func (f *File) ContextFor(path string) (context string, ok bool) {
	base := filepath.Base(path)
	for _, r := range f.Rules {
		matched, err := filepath.Match(r.Pattern, base)
		if err != nil || !matched {
			continue
		}
		if r.Context == "" {
			return "", false
		}
		return r.Context, true
	}
	return "", false
}
