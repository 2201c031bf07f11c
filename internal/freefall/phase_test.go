package freefall_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/freefall/internal/freefall"
)

var _ = Describe("ClassifyPhase", func() {
	DescribeTable("tags a moment of a 5 m drop",
		func(t, y float64, want freefall.Phase) {
			Expect(freefall.ClassifyPhase(t, y)).To(Equal(want))
		},
		Entry("before release", 0.0, 5.0, freefall.Suspended),
		Entry("mid fall", 0.5, 3.775, freefall.Falling),
		Entry("on the ground", 1.0095, 0.0, freefall.Landed),
		Entry("just above the threshold", 0.9, 0.0011, freefall.Falling),
		Entry("at the ground threshold", 1.0, 0.001, freefall.Landed),
		Entry("release check wins over height", 0.0, 0.0, freefall.Suspended),
		Entry("just released", 1e-6, 5.0, freefall.Falling),
	)

	It("gives each phase its own caption and color", func() {
		seen := map[string]bool{}
		for _, p := range []freefall.Phase{freefall.Suspended, freefall.Falling, freefall.Landed} {
			Expect(p.Narrative()).NotTo(BeEmpty())
			Expect(seen[p.Color()]).To(BeFalse())
			seen[p.Color()] = true
		}
		Expect(freefall.Suspended.Color()).To(Equal("blue"))
		Expect(freefall.Falling.Color()).To(Equal("green"))
		Expect(freefall.Landed.Color()).To(Equal("red"))
	})

	It("round-trips phase names", func() {
		for _, p := range []freefall.Phase{freefall.Suspended, freefall.Falling, freefall.Landed} {
			got, ok := freefall.ParsePhase(p.String())
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(p))
		}
		_, ok := freefall.ParsePhase("HOVERING")
		Expect(ok).To(BeFalse())
	})
})
