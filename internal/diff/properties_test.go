package diff_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jakujobi/Math374Project1/internal/diff"
	"github.com/jakujobi/Math374Project1/internal/sweep"
)

const eps = sweep.DefaultEps

var _ = Describe("ComputeSeries", func() {
	var hs diff.StepSizes

	BeforeEach(func() {
		var err error
		hs, err = sweep.Logspace(1, 12, 12)
		Expect(err).NotTo(HaveOccurred())
	})

	It("produces one record per step size, in input order", func() {
		series, err := diff.ComputeSeries(hs, eps)
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(HaveLen(len(hs)))
		for i, rec := range series {
			Expect(rec.H).To(Equal(hs[i]))
		}
	})

	It("keeps the forward rounding bound exactly twice the central one", func() {
		series, err := diff.ComputeSeries(hs, eps)
		Expect(err).NotTo(HaveOccurred())
		for _, rec := range series {
			Expect(rec.RoundForward).To(Equal(2 * rec.RoundCentral))
		}
	})

	It("keeps the truncation bound ratio at h/3", func() {
		series, err := diff.ComputeSeries(hs, eps)
		Expect(err).NotTo(HaveOccurred())
		for _, rec := range series {
			Expect(rec.TruncCentral / rec.TruncForward).To(BeNumerically("~", rec.H/3, rec.H*1e-12))
		}
	})

	It("has rounding bounds increasing and truncation bounds decreasing as h shrinks", func() {
		series, err := diff.ComputeSeries(hs, eps)
		Expect(err).NotTo(HaveOccurred())

		// Logspace returns ascending h, so walk from large h down.
		for i := len(series) - 2; i >= 0; i-- {
			smaller, larger := series[i], series[i+1]
			Expect(smaller.RoundForward).To(BeNumerically(">", larger.RoundForward))
			Expect(smaller.RoundCentral).To(BeNumerically(">", larger.RoundCentral))
			Expect(smaller.TruncForward).To(BeNumerically("<", larger.TruncForward))
			Expect(smaller.TruncCentral).To(BeNumerically("<", larger.TruncCentral))
		}
	})

	It("accepts an empty sweep", func() {
		series, err := diff.ComputeSeries(diff.StepSizes{}, eps)
		Expect(err).NotTo(HaveOccurred())
		Expect(series).To(BeEmpty())
	})

	It("rejects a sweep containing a non-positive step size", func() {
		_, err := diff.ComputeSeries(diff.StepSizes{1e-5, -1e-3}, eps)
		Expect(err).To(MatchError(diff.ErrInvalidInput))
	})
})

var _ = Describe("ComputeOptimalPoints", func() {
	It("satisfies the closed forms h_fwd^2 = 2eps and h_ctr^3 = 3eps", func() {
		pts, err := diff.ComputeOptimalPoints(eps)
		Expect(err).NotTo(HaveOccurred())
		Expect(pts.Forward.H * pts.Forward.H).To(BeNumerically("~", 2*eps, 2*eps*1e-12))
		Expect(pts.Central.H * pts.Central.H * pts.Central.H).To(BeNumerically("~", 3*eps, 3*eps*1e-12))
	})

	It("matches the standard-roundoff reference values to 4 significant figures", func() {
		pts, err := diff.ComputeOptimalPoints(2.220446049250313e-16)
		Expect(err).NotTo(HaveOccurred())
		Expect(pts.Forward.H).To(BeNumerically("~", 2.1073e-8, 2.1073e-8*1e-3))
		Expect(pts.Forward.MinError).To(BeNumerically("~", 1.0537e-8, 1.0537e-8*1e-3))
		Expect(pts.Central.H).To(BeNumerically("~", 8.7335e-6, 8.7335e-6*1e-3))
		Expect(pts.Central.MinError).To(BeNumerically("~", 1.2712e-11, 1.2712e-11*1e-3))
	})

	It("rejects a non-positive eps", func() {
		_, err := diff.ComputeOptimalPoints(0)
		Expect(err).To(MatchError(diff.ErrInvalidInput))
	})
})
