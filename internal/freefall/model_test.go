package freefall_test

import (
	"errors"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/freefall/internal/freefall"
)

var _ = Describe("Model", func() {
	var m freefall.Model

	BeforeEach(func() {
		m = freefall.Default()
	})

	Describe("New", func() {
		It("accepts alternate gravity", func() {
			moon, err := freefall.New(1.62)
			Expect(err).NotTo(HaveOccurred())
			Expect(moon.Gravity()).To(Equal(1.62))
			Expect(moon.FallDuration(5)).To(BeNumerically("~", math.Sqrt(10/1.62), 1e-12))
		})

		DescribeTable("rejects invalid gravity",
			func(g float64) {
				_, err := freefall.New(g)
				Expect(errors.Is(err, freefall.ErrInvalidGravity)).To(BeTrue())
			},
			Entry("zero", 0.0),
			Entry("negative", -9.8),
			Entry("NaN", math.NaN()),
			Entry("Inf", math.Inf(1)),
		)

		It("treats the zero value as standard gravity", func() {
			var zero freefall.Model
			Expect(zero.Gravity()).To(Equal(freefall.StandardGravity))
		})
	})

	Describe("FallDuration", func() {
		It("is zero on the ground", func() {
			Expect(m.FallDuration(0)).To(Equal(0.0))
		})

		DescribeTable("matches sqrt(2h/g)",
			func(h0 float64) {
				Expect(m.FallDuration(h0)).To(Equal(math.Sqrt(2 * h0 / 9.8)))
			},
			Entry("1 m", 1.0),
			Entry("2 m", 2.0),
			Entry("5 m", 5.0),
			Entry("10 m", 10.0),
		)

		It("is about 1.0102 s from 5 m", func() {
			Expect(m.FallDuration(5)).To(BeNumerically("~", 1.0102, 1e-4))
		})
	})

	Describe("StateAt", func() {
		It("starts at rest", func() {
			for _, h0 := range []float64{0, 1, 2, 5, 10} {
				Expect(m.StateAt(h0, 0).Velocity).To(Equal(0.0))
				Expect(m.StateAt(h0, 0).Height).To(Equal(h0))
			}
		})

		It("never goes below ground", func() {
			for _, h0 := range []float64{0, 1, 5, 10} {
				for t := 0.0; t < 5; t += 0.01 {
					Expect(m.StateAt(h0, t).Height).To(BeNumerically(">=", 0))
				}
			}
		})

		It("is on the ground at and after the fall duration", func() {
			for _, h0 := range []float64{0, 0.5, 1, 2, 2.5, 5, 7.9, 10} {
				T := m.FallDuration(h0)
				Expect(m.StateAt(h0, T).Height).To(Equal(0.0))
				Expect(m.StateAt(h0, T+0.01).Height).To(Equal(0.0))
				Expect(m.StateAt(h0, 2*T+1).Height).To(Equal(0.0))
			}
		})

		It("reports landing at the fall duration", func() {
			for _, h0 := range []float64{0.5, 1, 2, 5, 10} {
				s := m.Sample(h0, m.FallDuration(h0), false)
				Expect(s.State.Height).To(Equal(0.0))
				Expect(s.Phase).To(Equal(freefall.Landed))
			}
		})

		It("applies the clamp exactly near landing", func() {
			h0, g, t := 5.0, 9.8, 1.01
			st := m.StateAt(h0, t)
			Expect(st.Height).To(Equal(math.Max(h0-0.5*g*(t*t), 0)))
			Expect(st.Height).To(BeNumerically(">", 0))
			Expect(st.Velocity).To(Equal(g * t))
			Expect(st.FallDuration).To(Equal(m.FallDuration(h0)))
		})

		It("is monotonic over the fall", func() {
			h0 := 10.0
			T := m.FallDuration(h0)
			prev := m.StateAt(h0, 0)
			for i := 1; i <= 500; i++ {
				cur := m.StateAt(h0, T*float64(i)/500)
				Expect(cur.Height).To(BeNumerically("<=", prev.Height))
				Expect(cur.Velocity).To(BeNumerically(">=", prev.Velocity))
				prev = cur
			}
		})

		It("handles a drop from the ground", func() {
			st := m.StateAt(0, 0)
			Expect(st).To(Equal(freefall.KinematicState{}))
			Expect(freefall.ClassifyPhase(st.ElapsedTime, st.Height)).To(Equal(freefall.Suspended))
		})

		It("is safe for concurrent use", func() {
			var wg sync.WaitGroup
			results := make([]freefall.KinematicState, 64)
			for i := range results {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					results[idx] = m.StateAt(5, 0.5)
				}(i)
			}
			wg.Wait()
			for _, r := range results {
				Expect(r).To(Equal(results[0]))
			}
		})
	})

	Describe("Sample", func() {
		It("omits the trace unless requested", func() {
			Expect(m.Sample(5, 0.5, false).Trace).To(BeNil())
			s := m.Sample(5, 0.5, true)
			Expect(s.Trace).NotTo(BeNil())
			Expect(s.Phase).To(Equal(freefall.Falling))
		})
	})

	Describe("Validate", func() {
		It("accepts the domain", func() {
			Expect(freefall.Validate(0, 0)).To(Succeed())
			Expect(freefall.Validate(10, 1.4)).To(Succeed())
		})

		It("names the offending field", func() {
			err := freefall.Validate(-1, 0)
			Expect(errors.Is(err, freefall.ErrNegativeHeight)).To(BeTrue())
			var inErr *freefall.InputError
			Expect(errors.As(err, &inErr)).To(BeTrue())
			Expect(inErr.Field).To(Equal("initial_height"))

			Expect(errors.Is(freefall.Validate(1, -0.1), freefall.ErrNegativeTime)).To(BeTrue())
			Expect(errors.Is(freefall.Validate(math.NaN(), 0), freefall.ErrNonFinite)).To(BeTrue())
		})

		It("checks run parameters", func() {
			Expect(freefall.Params{InitialHeight: 5, Mass: 1}.Validate()).To(Succeed())
			err := freefall.Params{InitialHeight: 5, Mass: -1}.Validate()
			Expect(errors.Is(err, freefall.ErrNegativeMass)).To(BeTrue())
		})
	})
})
