package main

import (
	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/physics"
	"github.com/calclab/go-physics/pkg/validation"
)

var bernoulliGravity float64

var bernoulliCmd = &cobra.Command{
	Use:   "bernoulli <pressure> <density> <velocity> <height>",
	Short: "Total pressure of a steady incompressible flow",
	Long: `Computes the total pressure from Bernoulli's equation: static
pressure (Pa) plus dynamic pressure from the flow velocity (m/s) plus
hydrostatic pressure from the height (m) and fluid density (kg/m^3).`,
	Args: cobra.ExactArgs(4),
	RunE: runBernoulli,
}

func init() {
	bernoulliCmd.Flags().Float64Var(&bernoulliGravity, "gravity", physics.StandardGravity,
		"gravitational acceleration in m/s^2")
	// heights below the datum are negative values, not flags
	bernoulliCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(bernoulliCmd)
}

func runBernoulli(cmd *cobra.Command, args []string) error {
	labels := []string{"pressure", "density", "velocity", "height"}
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := parseFloatArg(labels[i], arg)
		if err != nil {
			return err
		}
		values[i] = v
	}

	if err := validation.ValidateDensity(values[1]); err != nil {
		return err
	}
	if err := validation.ValidateFinite("gravity", bernoulliGravity); err != nil {
		return err
	}

	total := physics.TotalPressureWithGravity(values[0], values[1], values[2], values[3], bernoulliGravity)
	cmd.Printf("%g Pa\n", total)
	return nil
}
