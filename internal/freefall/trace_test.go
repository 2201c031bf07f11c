package freefall_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/freefall/internal/freefall"
)

var _ = Describe("FormulaTrace", func() {
	m := freefall.Default()

	It("substitutes the state at 0.5 s of a 5 m drop", func() {
		tr := m.FormulaTrace(5, 0.5)
		Expect(tr.Equations).To(HaveLen(3))
		Expect(tr.Equations[0]).To(Equal(freefall.Equation{
			Label:        "vf = vi + g t",
			Substitution: "0.0 + 9.8·(0.5) = 4.9 m/s",
		}))
		Expect(tr.Equations[1].Label).To(Equal("y = vi·t + ½·g·t²"))
		Expect(tr.Equations[1].Substitution).To(Equal("0.0·0.5 + 0.5·9.8·(0.5)² = 1.22 m"))
		Expect(tr.Equations[2].Substitution).To(Equal("(4.9 - 0.0)/9.8 = 0.5 s"))
	})

	It("reports both distance terms", func() {
		g, t := 9.8, 1.2
		tr := m.FormulaTrace(10, t)
		Expect(tr.Term1).To(Equal(0.0))
		Expect(tr.Term2).To(Equal(0.5 * g * (t * t)))
		Expect(tr.Distance).To(Equal(tr.Term1 + tr.Term2))
	})

	It("agrees with StateAt on velocity", func() {
		for _, h0 := range []float64{1, 2, 5, 10} {
			T := m.FallDuration(h0)
			for i := 0; i <= 20; i++ {
				t := T * float64(i) / 20
				tr := m.FormulaTrace(h0, t)
				st := m.StateAt(h0, t)
				Expect(tr.Velocity).To(Equal(st.Velocity))
				Expect(freefall.FormatDisplay(tr.Velocity)).To(Equal(freefall.FormatDisplay(st.Velocity)))
				Expect(tr.ReconstructedTime).To(BeNumerically("~", t, 1e-12))
			}
		}
	})

	It("uses the injected gravity", func() {
		moon, err := freefall.New(1.62)
		Expect(err).NotTo(HaveOccurred())
		tr := moon.FormulaTrace(2, 1)
		Expect(tr.Gravity).To(Equal(1.62))
		Expect(tr.Equations[0].Substitution).To(Equal("0.0 + 1.62·(1.0) = 1.62 m/s"))
	})

	It("joins label and substitution", func() {
		lines := m.FormulaTrace(5, 0).Lines()
		Expect(lines).To(HaveLen(3))
		Expect(lines[0]).To(Equal("vf = vi + g t → 0.0 + 9.8·(0.0) = 0.0 m/s"))
	})
})
