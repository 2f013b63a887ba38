package surface_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/riemann/internal/surface"
)

const eps = 1e-9

var _ = Describe("Sheet geometry", func() {
	DescribeTable("for each order",
		func(order int) {
			opts := surface.DefaultOptions()
			opts.Order, opts.RadialSamples, opts.AngularSamples, opts.RadiusMax = order, 6, 40, 1.5
			s, err := surface.Build(opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Sheets).To(HaveLen(order))

			By("keeping every angle inside the branch-cut gap")
			Expect(s.Angles[0]).To(BeNumerically(">=", surface.GapAngle))
			Expect(s.Angles[len(s.Angles)-1]).To(BeNumerically("<=", 2*math.Pi-surface.GapAngle+eps))

			By("raising height monotonically with angle on every sheet")
			for _, sh := range s.Sheets {
				for _, row := range sh.Points {
					for j := 1; j < len(row); j++ {
						Expect(row[j].Z).To(BeNumerically(">", row[j-1].Z))
					}
				}
			}

			By("stacking sheets at least one offset unit apart")
			for k := 1; k < order; k++ {
				lower, upper := s.Sheets[k-1].Points, s.Sheets[k].Points
				for i := range lower {
					for j := range lower[i] {
						gap := upper[i][j].Z - lower[i][j].Z
						Expect(gap).To(BeNumerically(">=", surface.VerticalOffsetUnit-eps))
					}
				}
			}

			By("never letting one sheet's height range reach the next")
			for k := 1; k < order; k++ {
				_, prevHi := s.Sheets[k-1].Points.Bounds()
				nextLo, _ := s.Sheets[k].Points.Bounds()
				Expect(nextLo.Z).To(BeNumerically(">", prevHi.Z))
			}
		},
		Entry("square root", 2),
		Entry("cube root", 3),
		Entry("4th root", 4),
		Entry("8th root", 8),
		Entry("16th root", 16),
	)

	It("continues each sheet into the next across a full turn", func() {
		for k := 0; k < 3; k++ {
			for _, th := range []float64{0.1, 1, 3, 6} {
				Expect(surface.Height(th+2*math.Pi, k, 4)).To(BeNumerically("~", surface.Height(th, k+1, 4), eps))
			}
		}
	})

	It("separates distinct sheets at every shared sample", func() {
		opts := surface.DefaultOptions()
		opts.Order, opts.RadialSamples, opts.AngularSamples = 5, 3, 8
		s, err := surface.Build(opts)
		Expect(err).NotTo(HaveOccurred())
		for k1 := range s.Sheets {
			for k2 := k1 + 1; k2 < len(s.Sheets); k2++ {
				for i := range s.Radii {
					for j := range s.Angles {
						z1, z2 := s.Sheets[k1].Points[i][j].Z, s.Sheets[k2].Points[i][j].Z
						Expect(z2 - z1).To(BeNumerically(">=", s.VerticalOffsetUnit*float64(k2-k1)-eps))
					}
				}
			}
		}
	})

	It("honours a wider gap and offset from options", func() {
		s, err := surface.Build(surface.Options{
			Order: 3, RadialSamples: 2, AngularSamples: 5, RadiusMax: 1,
			GapAngle: 0.5, VerticalOffsetUnit: 2,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Angles[0]).To(BeNumerically("~", 0.5, eps))
		Expect(s.Angles[4]).To(BeNumerically("~", 2*math.Pi-0.5, eps))
		Expect(s.Sheets[1].Points[0][0].Z - s.Sheets[0].Points[0][0].Z).To(BeNumerically("~", 2+2*math.Pi/3, eps))
	})

	It("fails atomically on invalid input", func() {
		_, err := surface.BuildSheets(1, 5, 5, 1)
		Expect(err).To(MatchError(surface.ErrInvalidOrder))
		_, err = surface.BuildSheets(4, 1, 5, 1)
		Expect(err).To(MatchError(surface.ErrInvalidResolution))
		_, err = surface.BuildSheets(4, 5, 5, 0)
		Expect(err).To(MatchError(surface.ErrInvalidDomain))
	})
})
