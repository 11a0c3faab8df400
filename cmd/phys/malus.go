package main

import (
	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/physics"
	"github.com/calclab/go-physics/pkg/validation"
)

var malusCmd = &cobra.Command{
	Use:   "malus <intensity> <angle-degrees>",
	Short: "Transmitted intensity of polarized light (Malus' law)",
	Long: `Computes the intensity of polarized light after passing through an
analyzer rotated by the given angle, in degrees, from the polarizer.`,
	Args: cobra.ExactArgs(2),
	RunE: runMalus,
}

func init() {
	// negative analyzer angles parse as values, not flags
	malusCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(malusCmd)
}

func runMalus(cmd *cobra.Command, args []string) error {
	intensity, err := parseFloatArg("intensity", args[0])
	if err != nil {
		return err
	}
	angle, err := parseFloatArg("angle", args[1])
	if err != nil {
		return err
	}

	if err := validation.ValidateIntensity(intensity); err != nil {
		return err
	}

	cmd.Printf("%g\n", physics.TransmittedIntensity(intensity, angle))
	return nil
}
