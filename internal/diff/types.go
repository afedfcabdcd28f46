package diff

import "math"

// StepSizes is an ordered sweep of step sizes h, strictly positive.
type StepSizes []float64

func (s StepSizes) Clone() StepSizes {
	c := make(StepSizes, len(s))
	copy(c, s)
	return c
}

func (s StepSizes) Equal(other StepSizes) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Record holds the errors and bounds for a single step size.
type Record struct {
	H            float64 `json:"h"`
	ErrForward   float64 `json:"err_fwd"`
	ErrCentral   float64 `json:"err_ctr"`
	TruncForward float64 `json:"trunc_fwd"`
	TruncCentral float64 `json:"trunc_ctr"`
	RoundForward float64 `json:"round_fwd"`
	RoundCentral float64 `json:"round_ctr"`
}

func (r Record) IsFinite() bool {
	for _, v := range []float64{r.H, r.ErrForward, r.ErrCentral, r.TruncForward, r.TruncCentral, r.RoundForward, r.RoundCentral} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Series is the per-h output of a sweep, same order and length as the
// step sizes that produced it.
type Series []Record

func (s Series) Hs() []float64 {
	return s.column(func(r Record) float64 { return r.H })
}

func (s Series) ErrForward() []float64 {
	return s.column(func(r Record) float64 { return r.ErrForward })
}

func (s Series) ErrCentral() []float64 {
	return s.column(func(r Record) float64 { return r.ErrCentral })
}

func (s Series) TruncForward() []float64 {
	return s.column(func(r Record) float64 { return r.TruncForward })
}

func (s Series) TruncCentral() []float64 {
	return s.column(func(r Record) float64 { return r.TruncCentral })
}

func (s Series) RoundForward() []float64 {
	return s.column(func(r Record) float64 { return r.RoundForward })
}

func (s Series) RoundCentral() []float64 {
	return s.column(func(r Record) float64 { return r.RoundCentral })
}

func (s Series) column(get func(Record) float64) []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = get(r)
	}
	return out
}

// OptimalPoint is the step size minimizing total error for one formula
// and the error achieved there.
type OptimalPoint struct {
	H        float64
	MinError float64
}

// OptimalPoints pairs the forward and central optima for one epsilon.
type OptimalPoints struct {
	Forward OptimalPoint
	Central OptimalPoint
}
