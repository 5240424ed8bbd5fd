// Command obf-lint validates .obfpolicy.yaml files: it checks that the
// policy's requires constraint is satisfiable against the engine version
// vendored alongside it, that every rule's glob pattern compiles, and that
// every named context is one this engine actually implements.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/veilforge/obf"
	"github.com/veilforge/obf/internal/policy"
)

var knownContexts = map[string]bool{
	"identity":         true,
	"volatile_global":  true,
	"aliased_pointers": true,
	"anti_debug":       true,
	"mutating_global":  true,
}

var rootCmd = &cobra.Command{
	Use:   "obf-lint [policy-file]...",
	Short: "Validate .obfpolicy.yaml files against this engine",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	failed := false
	for _, path := range args {
		if err := lintOne(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		return fmt.Errorf("one or more policy files failed validation")
	}
	return nil
}

func lintOne(path string) error {
	f, err := policy.Load(path)
	if err != nil {
		return err
	}
	if err := f.CheckCompatible(obf.Version); err != nil {
		return err
	}
	for _, r := range f.Rules {
		if _, err := filepath.Match(r.Pattern, ""); err != nil {
			return fmt.Errorf("rule %q has an invalid glob pattern: %w", r.Pattern, err)
		}
		if r.Context != "" && !knownContexts[r.Context] {
			return fmt.Errorf("rule %q names unknown context %q", r.Pattern, r.Context)
		}
		if r.Tier != nil && (*r.Tier < 0 || *r.Tier > 6) {
			return fmt.Errorf("rule %q has out-of-range tier %d", r.Pattern, *r.Tier)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
