package main

import (
	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/physics"
	"github.com/calclab/go-physics/pkg/validation"
)

var kirchhoffCmd = &cobra.Command{
	Use:   "kirchhoff <v1> <v2> [v3 ...]",
	Short: "Check Kirchhoff's voltage law for a closed loop",
	Long: `Sums the voltages around a closed circuit loop and reports whether
the loop satisfies Kirchhoff's voltage law (sum of zero, within a small
tolerance). Voltage drops are given as negative values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKirchhoff,
}

func init() {
	// voltage drops are negative values, not flags
	kirchhoffCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(kirchhoffCmd)
}

func runKirchhoff(cmd *cobra.Command, args []string) error {
	voltages := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := parseFloatArg("voltage", arg)
		if err != nil {
			return err
		}
		voltages = append(voltages, v)
	}

	if err := validation.ValidateVoltageLoop(voltages); err != nil {
		return err
	}

	residual := physics.LoopResidual(voltages)
	cmd.Printf("residual: %g V\n", residual)
	if physics.VoltageLawSatisfied(voltages) {
		cmd.Println("loop is balanced")
	} else {
		cmd.Println("loop is NOT balanced")
	}

	return nil
}
