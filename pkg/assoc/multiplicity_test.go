package assoc_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/assoc"
)

var _ = Describe("multiplicity", func() {
	DescribeTable("parses",
		func(s string, exp assoc.Multiplicity) {
			m := Must(assoc.ParseMultiplicity(s))
			Expect(m).To(Equal(exp))
			Expect(Must(assoc.ParseMultiplicity(m.String()))).To(Equal(exp))
		},
		Entry("exactly one", "1", assoc.One),
		Entry("optional", "0..1", assoc.ZeroOrOne),
		Entry("many", "*", assoc.ZeroOrMore),
		Entry("at least one", "1..*", assoc.OneOrMore),
		Entry("ordered", "1..* ordered", assoc.OneOrMore.AsOrdered()),
		Entry("range", "2..4", assoc.Multiplicity{Lower: 2, Upper: 4}),
	)

	It("rejects invalid ranges", func() {
		_, err := assoc.ParseMultiplicity("3..1")
		Expect(err).To(MatchError("upper bound 1 less than lower bound 3"))
		_, err = assoc.ParseMultiplicity("x")
		Expect(err).To(HaveOccurred())
	})

	It("checks counts", func() {
		Expect(assoc.OneOrMore.Allows(0)).To(BeFalse())
		Expect(assoc.OneOrMore.Allows(7)).To(BeTrue())
		Expect(assoc.ZeroOrOne.Allows(2)).To(BeFalse())
	})
})
