package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calclab/go-physics/pkg/complexnum"
)

var complexPolar bool

var complexCmd = &cobra.Command{
	Use:   "complex <op> <a_re> <a_im> [b_re b_im]",
	Short: "Complex arithmetic in rectangular or polar form",
	Long: `Evaluates a complex-number operation. Operations add, sub, mul and
div take two operands; conj, abs and arg take one. Each operand is a
(real, imaginary) pair, or a (magnitude, angle-in-radians) pair when
--polar is set.`,
	Args: cobra.RangeArgs(3, 5),
	RunE: runComplex,
}

func init() {
	complexCmd.Flags().BoolVar(&complexPolar, "polar", false,
		"interpret operand pairs as (magnitude, angle in radians)")
	// flags come before operands so negative components parse as values
	complexCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(complexCmd)
}

func runComplex(cmd *cobra.Command, args []string) error {
	op := args[0]

	operands, err := parseOperands(args[1:])
	if err != nil {
		return err
	}

	unary := map[string]bool{"conj": true, "abs": true, "arg": true}
	if unary[op] && len(operands) != 1 {
		return fmt.Errorf("operation %q takes one operand (2 values), got %d values", op, 2*len(operands))
	}
	if !unary[op] && len(operands) != 2 {
		return fmt.Errorf("operation %q takes two operands (4 values), got %d values", op, 2*len(operands))
	}

	a := operands[0]
	switch op {
	case "add":
		cmd.Println(a.Add(operands[1]))
	case "sub":
		cmd.Println(a.Sub(operands[1]))
	case "mul":
		cmd.Println(a.Mul(operands[1]))
	case "div":
		quotient, err := a.Div(operands[1])
		if err != nil {
			return err
		}
		cmd.Println(quotient)
	case "conj":
		cmd.Println(a.Conj())
	case "abs":
		cmd.Printf("%g\n", a.Abs())
	case "arg":
		cmd.Printf("%g\n", a.Arg())
	default:
		return fmt.Errorf("unknown operation %q (want add, sub, mul, div, conj, abs or arg)", op)
	}

	return nil
}

// parseOperands converts value pairs into complex numbers, honoring the
// --polar flag.
func parseOperands(values []string) ([]complexnum.Complex, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("operands must be given as value pairs, got %d values", len(values))
	}

	var operands []complexnum.Complex
	for i := 0; i < len(values); i += 2 {
		first, err := parseFloatArg("operand value", values[i])
		if err != nil {
			return nil, err
		}
		second, err := parseFloatArg("operand value", values[i+1])
		if err != nil {
			return nil, err
		}

		if complexPolar {
			operands = append(operands, complexnum.FromPolar(first, second))
		} else {
			operands = append(operands, complexnum.FromRectangular(first, second))
		}
	}
	return operands, nil
}
