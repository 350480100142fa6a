package registry_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/registry"
)

type impl struct {
	name string
}

var _ = Describe("registry", func() {
	var r registry.Registry[*impl]

	BeforeEach(func() {
		r = registry.New[*impl]("implementation")
		MustBeSuccessful(r.Register("b", func() *impl { return &impl{"b"} }))
		MustBeSuccessful(r.Register("a", func() *impl { return &impl{"a"} }))
	})

	It("lists sorted names", func() {
		Expect(r.Names()).To(Equal([]string{"a", "b"}))
		Expect(r.Has("a")).To(BeTrue())
		Expect(r.Has("c")).To(BeFalse())
	})

	It("creates new instances", func() {
		i := Must(r.Create("a"))
		Expect(i.name).To(Equal("a"))
		Expect(Must(r.Create("a"))).NotTo(BeIdenticalTo(i))
	})

	It("rejects unknown names", func() {
		_, err := r.Create("c")
		MustFailWithMessage(err, `unknown implementation "c"`)
	})

	It("rejects duplicates", func() {
		MustFailWithMessage(r.Register("a", func() *impl { return nil }), `implementation "a" already registered`)
		MustFailWithMessage(r.Register("", func() *impl { return nil }), "implementation name required")
		MustFailWithMessage(r.Register("c", nil), `constructor for implementation "c" required`)
		Expect(func() { registry.MustRegister(r, "a", func() *impl { return nil }) }).To(Panic())
	})
})
