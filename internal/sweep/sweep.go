// Package sweep generates log-spaced step-size sweeps for the error
// analysis engine and holds the machine-epsilon bounds of the lab.
package sweep

import (
	"fmt"
	"math"

	"github.com/jakujobi/Math374Project1/internal/diff"
)

const (
	// DefaultEps is the double-precision unit roundoff, 2^-52.
	DefaultEps = 2.220446049250313e-16

	// Adjustable epsilon range exposed to the user.
	MinEps = 1e-16
	MaxEps = 1e-10

	// Exponent range for h = 10^-k sweeps.
	MinExp = 1
	MaxExp = 16

	DefaultMinExp = 1
	DefaultMaxExp = 16
	DefaultPoints = 50
)

// Logspace returns points step sizes from 10^-maxExp up to 10^-minExp,
// evenly spaced in log10. A single point collapses to 10^-maxExp.
func Logspace(minExp, maxExp, points int) (diff.StepSizes, error) {
	if minExp < MinExp || maxExp > MaxExp {
		return nil, fmt.Errorf("exponents must be within [%d, %d], got [%d, %d]", MinExp, MaxExp, minExp, maxExp)
	}
	if minExp > maxExp {
		return nil, fmt.Errorf("min exponent %d exceeds max exponent %d", minExp, maxExp)
	}
	if points < 1 {
		return nil, fmt.Errorf("need at least 1 point, got %d", points)
	}

	hs := make(diff.StepSizes, points)
	if points == 1 {
		hs[0] = math.Pow(10, -float64(maxExp))
		return hs, nil
	}

	lo := -float64(maxExp)
	step := (float64(maxExp) - float64(minExp)) / float64(points-1)
	for i := range hs {
		hs[i] = math.Pow(10, lo+float64(i)*step)
	}
	return hs, nil
}

// ClampEps forces eps into the adjustable range.
func ClampEps(eps float64) float64 {
	return math.Max(MinEps, math.Min(MaxEps, eps))
}
