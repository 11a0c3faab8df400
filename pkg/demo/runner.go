// Package demo evaluates worked-example scenarios against the formula
// library and reports expected versus actual values, mirroring the
// embedded self-tests the toolkit is built around.
package demo

import (
	"context"
	"fmt"
	"math"

	"github.com/calclab/go-physics/pkg/complexnum"
	"github.com/calclab/go-physics/pkg/config"
	"github.com/calclab/go-physics/pkg/logging"
	"github.com/calclab/go-physics/pkg/physics"
	"github.com/calclab/go-physics/pkg/validation"
)

// Result is the outcome of a single scenario check.
type Result struct {
	Group    string
	Name     string
	Expected string
	Actual   string
	Passed   bool
	Detail   string
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Runner evaluates scenario configurations.
type Runner struct {
	logger *logging.Logger
}

// NewRunner creates a Runner logging through the given logger.
func NewRunner(logger *logging.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run evaluates every scenario in cfg and returns the per-check results
// with a summary. Malformed scenarios are reported as failed checks
// rather than aborting the run.
func (r *Runner) Run(ctx context.Context, cfg *config.ScenarioConfig) ([]Result, Summary) {
	var results []Result

	for _, s := range cfg.Complex {
		results = append(results, r.runComplex(s, cfg.Tolerance))
	}
	for _, s := range cfg.Kirchhoff {
		results = append(results, r.runKirchhoff(s))
	}
	for _, s := range cfg.Brewster {
		results = append(results, r.runBrewster(s, cfg.Tolerance))
	}
	for _, s := range cfg.Malus {
		results = append(results, r.runMalus(s, cfg.Tolerance))
	}
	for _, s := range cfg.Bernoulli {
		results = append(results, r.runBernoulli(s, cfg.Tolerance))
	}

	summary := Summarize(results)
	for _, res := range results {
		r.logger.Debug(ctx, "scenario evaluated",
			"group", res.Group,
			"name", res.Name,
			"expected", res.Expected,
			"actual", res.Actual,
			"passed", res.Passed,
		)
	}
	r.logger.Info(ctx, "demo run complete",
		"total", summary.Total,
		"passed", summary.Passed,
		"failed", summary.Failed,
	)

	return results, summary
}

// Summarize aggregates results into a Summary.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

func (r *Runner) runComplex(s config.ComplexScenario, fallbackTol float64) Result {
	res := Result{Group: "complex", Name: s.Name}
	tol := pickTolerance(s.Tolerance, fallbackTol)

	if len(s.A) != 2 {
		return failed(res, fmt.Sprintf("operand a needs 2 components, got %d", len(s.A)))
	}
	a := complexnum.FromRectangular(s.A[0], s.A[1])

	var b complexnum.Complex
	binary := s.Op == "add" || s.Op == "sub" || s.Op == "mul" || s.Op == "div"
	if binary {
		if len(s.B) != 2 {
			return failed(res, fmt.Sprintf("operand b needs 2 components, got %d", len(s.B)))
		}
		b = complexnum.FromRectangular(s.B[0], s.B[1])
	}

	switch s.Op {
	case "add":
		return complexResult(res, a.Add(b), s.Want, tol)
	case "sub":
		return complexResult(res, a.Sub(b), s.Want, tol)
	case "mul":
		return complexResult(res, a.Mul(b), s.Want, tol)
	case "div":
		quotient, err := a.Div(b)
		if err != nil {
			return failed(res, err.Error())
		}
		return complexResult(res, quotient, s.Want, tol)
	case "conj":
		return complexResult(res, a.Conj(), s.Want, tol)
	case "abs":
		return scalarResult(res, a.Abs(), s.Want, tol)
	case "arg":
		return scalarResult(res, a.Arg(), s.Want, tol)
	default:
		return failed(res, fmt.Sprintf("unknown operation %q", s.Op))
	}
}

func (r *Runner) runKirchhoff(s config.KirchhoffScenario) Result {
	res := Result{Group: "kirchhoff", Name: s.Name}

	if err := validation.ValidateVoltageLoop(s.Voltages); err != nil {
		return failed(res, err.Error())
	}

	balanced := physics.VoltageLawSatisfied(s.Voltages)
	residual := physics.LoopResidual(s.Voltages)
	res.Expected = fmt.Sprintf("balanced=%t", s.WantBalanced)
	res.Actual = fmt.Sprintf("balanced=%t residual=%g", balanced, residual)
	res.Passed = balanced == s.WantBalanced
	return res
}

func (r *Runner) runBrewster(s config.BrewsterScenario, fallbackTol float64) Result {
	res := Result{Group: "brewster", Name: s.Name}

	if err := validation.ValidateRefractiveIndex("n1", s.N1); err != nil {
		return failed(res, err.Error())
	}
	if err := validation.ValidateRefractiveIndex("n2", s.N2); err != nil {
		return failed(res, err.Error())
	}

	angle := physics.BrewsterAngle(s.N1, s.N2)
	return scalarCheck(res, angle, s.WantDegrees, pickTolerance(s.Tolerance, fallbackTol))
}

func (r *Runner) runMalus(s config.MalusScenario, fallbackTol float64) Result {
	res := Result{Group: "malus", Name: s.Name}

	if err := validation.ValidateIntensity(s.Intensity); err != nil {
		return failed(res, err.Error())
	}
	if err := validation.ValidateFinite("angle", s.AngleDegrees); err != nil {
		return failed(res, err.Error())
	}

	intensity := physics.TransmittedIntensity(s.Intensity, s.AngleDegrees)
	return scalarCheck(res, intensity, s.WantIntensity, pickTolerance(s.Tolerance, fallbackTol))
}

func (r *Runner) runBernoulli(s config.BernoulliScenario, fallbackTol float64) Result {
	res := Result{Group: "bernoulli", Name: s.Name}

	if err := validation.ValidateDensity(s.Density); err != nil {
		return failed(res, err.Error())
	}
	for label, v := range map[string]float64{
		"pressure": s.Pressure,
		"velocity": s.Velocity,
		"height":   s.Height,
	} {
		if err := validation.ValidateFinite(label, v); err != nil {
			return failed(res, err.Error())
		}
	}

	gravity := physics.StandardGravity
	if s.Gravity != nil {
		if err := validation.ValidateFinite("gravity", *s.Gravity); err != nil {
			return failed(res, err.Error())
		}
		gravity = *s.Gravity
	}
	pressure := physics.TotalPressureWithGravity(s.Pressure, s.Density, s.Velocity, s.Height, gravity)
	return scalarCheck(res, pressure, s.WantPressure, pickTolerance(s.Tolerance, fallbackTol))
}

func complexResult(res Result, actual complexnum.Complex, want []float64, tol float64) Result {
	if len(want) != 2 {
		return failed(res, fmt.Sprintf("want needs 2 components, got %d", len(want)))
	}
	expected := complexnum.FromRectangular(want[0], want[1])
	res.Expected = expected.String()
	res.Actual = actual.String()
	res.Passed = actual.EqualWithin(expected, tol)
	return res
}

func scalarResult(res Result, actual float64, want []float64, tol float64) Result {
	if len(want) != 1 {
		return failed(res, fmt.Sprintf("want needs 1 component, got %d", len(want)))
	}
	return scalarCheck(res, actual, want[0], tol)
}

func scalarCheck(res Result, actual, expected, tol float64) Result {
	res.Expected = fmt.Sprintf("%g", expected)
	res.Actual = fmt.Sprintf("%g", actual)
	res.Passed = math.Abs(actual-expected) <= tol
	return res
}

func failed(res Result, detail string) Result {
	res.Passed = false
	res.Detail = detail
	return res
}

func pickTolerance(own, fallback float64) float64 {
	if own > 0 {
		return own
	}
	if fallback > 0 {
		return fallback
	}
	return config.DefaultTolerance
}
