package freefall_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/freefall/internal/freefall"
)

var _ = Describe("FormatDisplay", func() {
	DescribeTable("truncates to two decimals",
		func(x float64, want string) {
			Expect(freefall.FormatDisplay(x)).To(Equal(want))
		},
		Entry("drops the third digit instead of rounding", 2.567, "2.56"),
		Entry("keeps exact values", 2.0, "2.0"),
		Entry("zero", 0.0, "0.0"),
		Entry("integer", 10.0, "10.0"),
		Entry("one decimal", 9.8, "9.8"),
		Entry("just under a boundary", 4.999, "4.99"),
		Entry("half-way digit", 3.775, "3.77"),
	)

	It("never exceeds its input", func() {
		for x := 0.0; x < 20; x += 0.0137 {
			Expect(freefall.Truncate(x)).To(BeNumerically("<=", x+1e-12))
			Expect(x - freefall.Truncate(x)).To(BeNumerically("<", 0.01+1e-9))
		}
	})
})
