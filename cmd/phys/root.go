package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/validation"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "phys",
	Short: "Educational physics and complex-arithmetic calculator",
	Long: `phys evaluates classic closed-form physics formulas and complex
arithmetic, and can verify a set of worked examples against their
expected values.`,
	SilenceUsage: true,
}

// parseFloatArg parses a positional argument as a finite float64.
func parseFloatArg(label, raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", label, raw)
	}
	if err := validation.ValidateFinite(label, value); err != nil {
		return 0, err
	}
	return value, nil
}
