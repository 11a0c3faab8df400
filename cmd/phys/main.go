// Command phys is an educational physics calculator: complex arithmetic,
// Kirchhoff's voltage law, Brewster's angle, Malus' law, and Bernoulli's
// theorem, with a built-in worked-example demo harness.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
