// Command obf-seedgen prints cryptographically strong seeds suitable for
// OBF_SEED: a single 64-bit obfuscation-engine seed doesn't need to be
// unpredictable against an adversary who can already read the binary it
// seeds, but it does need to be distinct per build so two builds of the
// same source don't obfuscate identically.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veilforge/obf/internal/entropy"
)

var (
	count int
	hex   bool
)

var rootCmd = &cobra.Command{
	Use:   "obf-seedgen",
	Short: "Generate seeds for the OBF_SEED build variable",
	Long: `obf-seedgen prints one or more 64-bit seeds drawn from an
AES-CTR-DRBG block keyed fresh from crypto/rand, formatted for direct use
as OBF_SEED.`,
	RunE: runSeedgen,
}

func init() {
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "number of seeds to print")
	rootCmd.Flags().BoolVar(&hex, "hex", true, "print seeds in 0x-prefixed hexadecimal")
}

func runSeedgen(cmd *cobra.Command, args []string) error {
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	for i := 0; i < count; i++ {
		seed, err := entropy.Seed64()
		if err != nil {
			return fmt.Errorf("generating seed: %w", err)
		}
		if hex {
			fmt.Printf("0x%016x\n", seed)
		} else {
			fmt.Println(seed)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
