package diff

import (
	"fmt"
	"math"
)

// X0 is the fixed evaluation point. The target function is sin, so the
// exact derivative is cos(X0).
const X0 = 1.0

func f(x float64) float64 { return math.Sin(x) }

var exactDerivative = math.Cos(X0)

// ComputeSeries maps a step-size sweep and a machine epsilon to the
// full error series. Order and length match hs; an empty sweep yields
// an empty series. Any h <= 0 or eps <= 0 rejects the whole batch with
// ErrInvalidInput, so a partially bad sweep never produces partial data.
func ComputeSeries(hs StepSizes, eps float64) (Series, error) {
	if eps <= 0 {
		return nil, fmt.Errorf("%w: eps must be positive, got %g", ErrInvalidInput, eps)
	}
	for i, h := range hs {
		if h <= 0 {
			return nil, fmt.Errorf("%w: step size %d must be positive, got %g", ErrInvalidInput, i, h)
		}
	}

	f0 := f(X0) // loop-invariant

	series := make(Series, 0, len(hs))
	for i, h := range hs {
		fPlus := f(X0 + h)
		fMinus := f(X0 - h)

		// Very small h may give x0+h == x0 in floating point. That
		// regime is the point of the rounding bound, so the raw result
		// passes through unclamped.
		rec := Record{
			H:            h,
			ErrForward:   math.Abs((fPlus-f0)/h - exactDerivative),
			ErrCentral:   math.Abs((fPlus-fMinus)/(2*h) - exactDerivative),
			TruncForward: h / 2,
			TruncCentral: h * h / 6,
			RoundForward: 2 * eps / h,
			RoundCentral: eps / h,
		}
		if !rec.IsFinite() {
			return nil, PointError{Index: i, H: h}
		}
		series = append(series, rec)
	}

	return series, nil
}

// ComputeOptimalPoints balances each formula's truncation bound against
// its rounding bound and solves in closed form:
//
//	forward: h/2 = 2ε/h   → h = sqrt(2ε),   error sqrt(2ε)/2
//	central: h²/6 = ε/h   → h = (3ε)^(1/3), error (3ε)^(2/3)/6
func ComputeOptimalPoints(eps float64) (OptimalPoints, error) {
	if eps <= 0 {
		return OptimalPoints{}, fmt.Errorf("%w: eps must be positive, got %g", ErrInvalidInput, eps)
	}

	hFwd := math.Sqrt(2 * eps)
	hCtr := math.Cbrt(3 * eps)

	return OptimalPoints{
		Forward: OptimalPoint{H: hFwd, MinError: hFwd / 2},
		Central: OptimalPoint{H: hCtr, MinError: hCtr * hCtr / 6},
	}, nil
}
