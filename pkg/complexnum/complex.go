// Package complexnum implements complex numbers as an immutable value type
// with field arithmetic, polar construction, and magnitude/argument queries.
package complexnum

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero is returned by Div when the divisor is the zero value.
var ErrDivisionByZero = errors.New("complexnum: division by zero")

// Complex represents a complex number in rectangular form.
// The zero value is the complex zero. All operations return new values;
// no method mutates its receiver, so values may be freely shared.
type Complex struct {
	Real float64
	Imag float64
}

// FromRectangular creates a complex number from real and imaginary parts.
func FromRectangular(real, imag float64) Complex {
	return Complex{Real: real, Imag: imag}
}

// FromPolar creates a complex number from a magnitude and an angle in
// radians. A negative magnitude is preserved as a 180 degree phase flip.
func FromPolar(magnitude, angle float64) Complex {
	return Complex{
		Real: magnitude * math.Cos(angle),
		Imag: magnitude * math.Sin(angle),
	}
}

// Add returns the sum of two complex numbers.
func (c Complex) Add(other Complex) Complex {
	return Complex{
		Real: c.Real + other.Real,
		Imag: c.Imag + other.Imag,
	}
}

// Sub returns the difference between two complex numbers.
func (c Complex) Sub(other Complex) Complex {
	return Complex{
		Real: c.Real - other.Real,
		Imag: c.Imag - other.Imag,
	}
}

// Mul returns the product of two complex numbers.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		Real: c.Real*other.Real - c.Imag*other.Imag,
		Imag: c.Real*other.Imag + c.Imag*other.Real,
	}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Real: c.Real, Imag: -c.Imag}
}

// Div returns the quotient of two complex numbers. It returns
// ErrDivisionByZero when other is the zero value; the check happens before
// any division so the failure is never observed as NaN or Inf.
func (c Complex) Div(other Complex) (Complex, error) {
	denom := other.Real*other.Real + other.Imag*other.Imag
	if denom == 0 {
		return Complex{}, ErrDivisionByZero
	}
	num := c.Mul(other.Conj())
	return Complex{
		Real: num.Real / denom,
		Imag: num.Imag / denom,
	}, nil
}

// Abs returns the magnitude (modulus) of the complex number.
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Real*c.Real + c.Imag*c.Imag)
}

// Arg returns the argument in radians, in the range (-pi, pi].
func (c Complex) Arg() float64 {
	return math.Atan2(c.Imag, c.Real)
}

// Equal reports whether both components compare exactly equal. Callers
// comparing derived values should use EqualWithin instead.
func (c Complex) Equal(other Complex) bool {
	return c.Real == other.Real && c.Imag == other.Imag
}

// EqualWithin reports whether both components are within tol of each other.
func (c Complex) EqualWithin(other Complex, tol float64) bool {
	return math.Abs(c.Real-other.Real) <= tol && math.Abs(c.Imag-other.Imag) <= tol
}

// String renders the number as "(R + Ii)" or "(R - Ii)", with the sign
// chosen by the imaginary component.
func (c Complex) String() string {
	if math.Signbit(c.Imag) {
		return fmt.Sprintf("(%g - %gi)", c.Real, -c.Imag)
	}
	return fmt.Sprintf("(%g + %gi)", c.Real, c.Imag)
}
