package main

import (
	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/physics"
	"github.com/calclab/go-physics/pkg/validation"
)

var brewsterCmd = &cobra.Command{
	Use:   "brewster <n1> <n2>",
	Short: "Brewster's angle for light crossing between two media",
	Long: `Computes the angle of incidence at which light travelling from a
medium with refractive index n1 into a medium with refractive index n2
reflects with complete polarization.`,
	Args: cobra.ExactArgs(2),
	RunE: runBrewster,
}

func init() {
	rootCmd.AddCommand(brewsterCmd)
}

func runBrewster(cmd *cobra.Command, args []string) error {
	n1, err := parseFloatArg("n1", args[0])
	if err != nil {
		return err
	}
	n2, err := parseFloatArg("n2", args[1])
	if err != nil {
		return err
	}

	if err := validation.ValidateRefractiveIndex("n1", n1); err != nil {
		return err
	}
	if err := validation.ValidateRefractiveIndex("n2", n2); err != nil {
		return err
	}

	cmd.Printf("%g degrees\n", physics.BrewsterAngle(n1, n2))
	return nil
}
