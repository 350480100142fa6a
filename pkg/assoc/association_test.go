package assoc_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/assoc"
)

type node struct {
	name string

	parent   assoc.Slot[*node]
	children assoc.Slot[*node]

	clients   assoc.Slot[*node]
	suppliers assoc.Slot[*node]

	keys     assoc.Slot[*node]
	features assoc.Slot[*node]
}

func (n *node) String() string {
	return n.name
}

func newNode(name string) *node {
	return &node{name: name}
}

func tree() *assoc.Association[*node, *node] {
	return assoc.New[*node, *node]("tree",
		assoc.End[*node, *node]{Role: "child", Mult: assoc.ZeroOrMore, Slot: func(n *node) *assoc.Slot[*node] { return &n.children }},
		assoc.End[*node, *node]{Role: "parent", Mult: assoc.ZeroOrOne, Slot: func(n *node) *assoc.Slot[*node] { return &n.parent }},
	)
}

func dependency() *assoc.Association[*node, *node] {
	return assoc.New[*node, *node]("dependency",
		assoc.End[*node, *node]{Role: "supplier", Mult: assoc.OneOrMore, Slot: func(n *node) *assoc.Slot[*node] { return &n.suppliers }},
		assoc.End[*node, *node]{Role: "client", Mult: assoc.ZeroOrMore, Slot: func(n *node) *assoc.Slot[*node] { return &n.clients }},
	)
}

func keyFeatures() *assoc.Association[*node, *node] {
	return assoc.New[*node, *node]("keyFeature",
		assoc.End[*node, *node]{Role: "feature", Mult: assoc.OneOrMore.AsOrdered(), Slot: func(n *node) *assoc.Slot[*node] { return &n.features }},
		assoc.End[*node, *node]{Role: "key", Mult: assoc.ZeroOrMore, Slot: func(n *node) *assoc.Slot[*node] { return &n.keys }},
	)
}

var _ = Describe("association", func() {
	var a, b, c *node

	BeforeEach(func() {
		a = newNode("a")
		b = newNode("b")
		c = newNode("c")
	})

	Context("link", func() {
		It("links both directions", func() {
			as := tree()
			prev := Must(as.Link(a, b))
			Expect(prev.A).To(BeNil())
			Expect(prev.B).To(BeNil())
			Expect(as.Forward(a)).To(Equal([]*node{b}))
			Expect(as.Inverse(b)).To(Equal([]*node{a}))
			Expect(as.Linked(a, b)).To(BeTrue())
			Expect(as.GetInverse(b)).To(BeIdenticalTo(a))
		})

		It("rejects missing participants", func() {
			as := tree()
			_, err := as.Link(nil, b)
			Expect(err).To(MatchError(assoc.ErrRequired))
			Expect(err).To(MatchError("tree: parent: required argument missing"))
			_, err = as.Link(a, nil)
			Expect(err).To(MatchError(assoc.ErrRequired))
			Expect(as.Inverse(b)).To(BeEmpty())
			Expect(as.Forward(a)).To(BeEmpty())
		})

		It("replaces single valued partner", func() {
			as := tree()
			Must(as.Link(a, c))
			prev := Must(as.Link(b, c))
			Expect(prev.A).To(BeIdenticalTo(a))
			Expect(as.Forward(a)).To(BeEmpty())
			Expect(as.Forward(b)).To(Equal([]*node{c}))
			Expect(as.Inverse(c)).To(Equal([]*node{b}))
		})

		It("replaces via inverted view", func() {
			as := tree()
			Must(as.Link(a, c))
			old := Must(as.Inverted().Set(c, b))
			Expect(old).To(BeIdenticalTo(a))
			Expect(as.Forward(a)).To(BeEmpty())
			Expect(as.Forward(b)).To(Equal([]*node{c}))
		})

		It("is idempotent for unordered ends", func() {
			as := tree()
			Must(as.Link(a, b))
			Must(as.Link(a, c))
			Must(as.Link(a, b))
			Expect(as.Forward(a)).To(Equal([]*node{b, c}))
			Expect(as.Inverse(b)).To(Equal([]*node{a}))
		})

		It("moves relinked partners on ordered ends", func() {
			as := keyFeatures()
			Must(as.Link(a, b))
			Must(as.Link(a, c))
			Must(as.Link(a, b))
			Expect(as.Forward(a)).To(Equal([]*node{c, b}))
			Expect(as.Inverse(b)).To(Equal([]*node{a}))
		})

		It("inserts at position", func() {
			as := keyFeatures()
			d := newNode("d")
			Must(as.Link(a, b))
			Must(as.Link(a, c))
			Must(as.Insert(a, d, 0))
			Expect(as.Forward(a)).To(Equal([]*node{d, b, c}))
			Must(as.Insert(a, c, 1))
			Expect(as.Forward(a)).To(Equal([]*node{d, c, b}))
		})

		It("applies checks before mutation", func() {
			as := tree().WithCheck(func(p, c *node) error {
				if p == c {
					return assoc.ErrCycle
				}
				return nil
			})
			_, err := as.Link(a, a)
			Expect(err).To(MatchError(assoc.ErrCycle))
			Expect(as.Forward(a)).To(BeEmpty())

			_, err = as.Inverted().Link(a, a)
			Expect(err).To(MatchError(assoc.ErrCycle))
		})

		It("rejects exceeding bounded upper limits", func() {
			as := assoc.New[*node, *node]("pair",
				assoc.End[*node, *node]{Role: "child", Mult: assoc.Multiplicity{Lower: 0, Upper: 2}, Slot: func(n *node) *assoc.Slot[*node] { return &n.children }},
				assoc.End[*node, *node]{Role: "parent", Mult: assoc.ZeroOrMore, Slot: func(n *node) *assoc.Slot[*node] { return &n.parent }},
			)
			Must(as.Link(a, b))
			Must(as.Link(a, c))
			_, err := as.Link(a, newNode("d"))
			Expect(err).To(MatchError(assoc.ErrUpperBound))
			Expect(as.Forward(a)).To(HaveLen(2))
		})
	})

	Context("unlink", func() {
		It("unlinks both directions", func() {
			as := tree()
			Must(as.Link(a, b))
			Expect(as.Unlink(a, b)).To(BeTrue())
			Expect(as.Forward(a)).To(BeEmpty())
			Expect(as.Inverse(b)).To(BeEmpty())
		})

		It("reports missing links", func() {
			as := tree()
			Expect(as.Unlink(a, b)).To(BeFalse())
			Expect(as.Unlink(nil, b)).To(BeFalse())
		})

		It("protects lower bounds", func() {
			as := dependency()
			Must(as.Link(a, b))
			Expect(as.Unlink(a, b)).To(BeFalse())
			Expect(as.Forward(a)).To(Equal([]*node{b}))
			Expect(as.Inverse(b)).To(Equal([]*node{a}))

			Must(as.Link(a, c))
			Expect(as.Unlink(a, b)).To(BeTrue())
			Expect(as.Forward(a)).To(Equal([]*node{c}))
			Expect(as.Unlink(a, c)).To(BeFalse())
		})

		It("protects lower bounds of ordered ends", func() {
			as := keyFeatures()
			Must(as.Link(a, b))
			Must(as.Link(a, c))
			Expect(as.Unlink(a, c)).To(BeTrue())
			Expect(as.Unlink(a, b)).To(BeFalse())
			Expect(as.Forward(a)).To(HaveLen(1))
		})

		It("rejects replacing the last required partner", func() {
			as := assoc.New[*node, *node]("part",
				assoc.End[*node, *node]{Role: "part", Mult: assoc.OneOrMore.AsOrdered(), Slot: func(n *node) *assoc.Slot[*node] { return &n.children }},
				assoc.End[*node, *node]{Role: "whole", Mult: assoc.One, Slot: func(n *node) *assoc.Slot[*node] { return &n.parent }},
			)
			Must(as.Link(a, c))
			_, err := as.Link(b, c)
			Expect(err).To(MatchError(assoc.ErrLowerBound))
			Expect(as.Forward(a)).To(Equal([]*node{c}))
			Expect(as.Forward(b)).To(BeEmpty())

			d := newNode("d")
			Must(as.Link(a, d))
			Must(as.Link(b, c))
			Expect(as.Forward(a)).To(Equal([]*node{d}))
			Expect(as.Forward(b)).To(Equal([]*node{c}))

			Expect(as.Detach(b, c)).To(BeFalse())
			Must(as.Link(b, newNode("e")))
			Expect(as.Detach(b, c)).To(BeTrue())
			Expect(as.Inverse(c)).To(BeEmpty())
		})
	})

	Context("clear", func() {
		It("clears all forward links", func() {
			as := dependency()
			Must(as.Link(a, b))
			Must(as.Link(a, c))
			Expect(Must(as.Clear(a))).To(Equal(2))
			Expect(as.Forward(a)).To(BeEmpty())
			Expect(as.Inverse(b)).To(BeEmpty())
			Expect(as.Inverse(c)).To(BeEmpty())
		})

		It("drops links regardless of bounds", func() {
			as := keyFeatures()
			Must(as.Link(a, b))
			Expect(as.Unlink(a, b)).To(BeFalse())
			Expect(as.Drop(a, b)).To(BeTrue())
			Expect(as.Forward(a)).To(BeEmpty())
			Expect(as.Inverse(b)).To(BeEmpty())
			Expect(as.Drop(a, b)).To(BeFalse())
		})

		It("respects inverse bounds", func() {
			as := dependency().Inverted()
			Must(as.Link(b, a))
			_, err := as.Clear(b)
			Expect(err).To(MatchError(assoc.ErrLowerBound))
			Expect(as.Forward(b)).To(Equal([]*node{a}))
		})
	})

	Context("set", func() {
		It("returns old value", func() {
			as := tree().Inverted()
			Expect(Must(as.Set(c, a))).To(BeNil())
			Expect(Must(as.Set(c, b))).To(BeIdenticalTo(a))
			Expect(Must(as.Set(c, nil))).To(BeIdenticalTo(b))
			Expect(as.Get(c)).To(BeNil())
		})

		It("refuses to clear required values", func() {
			as := assoc.New[*node, *node]("typed",
				assoc.End[*node, *node]{Role: "type", Mult: assoc.One, Slot: func(n *node) *assoc.Slot[*node] { return &n.parent }},
				assoc.End[*node, *node]{Role: "typed", Mult: assoc.ZeroOrMore, Slot: func(n *node) *assoc.Slot[*node] { return &n.children }},
			)
			Must(as.Set(a, b))
			_, err := as.Set(a, nil)
			Expect(err).To(MatchError(assoc.ErrRequired))
			Expect(as.Get(a)).To(BeIdenticalTo(b))
		})

		It("rejects multi-valued ends", func() {
			_, err := tree().Set(a, b)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("symmetry", func() {
		It("keeps both ends consistent", func() {
			as := dependency()
			nodes := []*node{a, b, c, newNode("d"), newNode("e")}
			for i, n := range nodes {
				for j, m := range nodes {
					if (i+j)%2 == 0 {
						Must(as.Link(n, m))
					}
				}
			}
			for _, n := range nodes[:3] {
				as.Unlink(n, nodes[0])
			}
			for _, n := range nodes {
				for _, m := range nodes {
					Expect(as.Linked(n, m)).To(Equal(ContainsNode(as.Inverse(m), n)), fmt.Sprintf("%s -> %s", n, m))
				}
			}
		})
	})
})

func ContainsNode(list []*node, n *node) bool {
	for _, e := range list {
		if e == n {
			return true
		}
	}
	return false
}
