package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/model"
)

var _ = Describe("namespaces", func() {
	var root, mid *model.Package
	var leaf *model.Class

	BeforeEach(func() {
		root = Must(model.NewPackage(nil, "Root", model.Public))
		mid = Must(model.NewPackage(root, "Mid", model.Public))
		leaf = Must(model.NewClass(mid, "Leaf", model.Public, false))
	})

	Context("elements", func() {
		It("creates elements", func() {
			Expect(root.Name()).To(Equal("Root"))
			Expect(root.Kind()).To(Equal(model.KindPackage))
			Expect(leaf.Kind()).To(Equal(model.KindClass))
			Expect(root.ID()).NotTo(BeEmpty())
			Expect(root.ID()).NotTo(Equal(mid.ID()))
		})

		It("rejects missing arguments", func() {
			_, err := model.NewPackage(nil, "", model.Public)
			Expect(err).To(MatchError(model.ErrRequired))
			Expect(err).To(MatchError("name: required argument missing"))
			_, err = model.NewPackage(nil, "P", "")
			Expect(err).To(MatchError(model.ErrRequired))
		})

		It("rejects invalid visibility", func() {
			_, err := model.NewPackage(nil, "P", "global")
			Expect(err).To(MatchError(model.ErrInvalid))
			Expect(err).To(MatchError(`visibility "global": invalid argument`))
		})

		It("supports package visibility", func() {
			Expect(model.DefaultVisibility).To(Equal(model.PackageVisibility))
			p := Must(model.NewPackage(root, "Internal", model.PackageVisibility))
			Expect(p.Visibility().String()).To(Equal("package"))
		})

		It("sets attributes returning the old value", func() {
			Expect(Must(leaf.SetName("Node"))).To(Equal("Leaf"))
			Expect(leaf.QualifiedName()).To(Equal("Root.Mid.Node"))

			old, err := leaf.SetName("")
			Expect(err).To(MatchError(model.ErrRequired))
			Expect(old).To(Equal("Node"))
			Expect(leaf.Name()).To(Equal("Node"))

			Expect(Must(leaf.SetVisibility(model.Private))).To(Equal(model.Public))
			_, err = leaf.SetVisibility("")
			Expect(err).To(MatchError(model.ErrRequired))
			Expect(leaf.Visibility()).To(Equal(model.Private))
		})

		It("handles tagged values", func() {
			Expect(leaf.SetTaggedValue("b", "1")).To(Equal(""))
			Expect(leaf.SetTaggedValue("a", "2")).To(Equal(""))
			Expect(leaf.SetTaggedValue("b", "3")).To(Equal("1"))
			Expect(leaf.Tags()).To(Equal([]string{"a", "b"}))
			Expect(leaf.SetTaggedValue("a", "")).To(Equal("2"))
			_, ok := leaf.TaggedValue("a")
			Expect(ok).To(BeFalse())
			Expect(leaf.Tags()).To(Equal([]string{"b"}))
		})
	})

	Context("ownership", func() {
		It("links both directions", func() {
			Expect(root.OwnedElements()).To(Equal([]model.Element{mid}))
			Expect(mid.Namespace()).To(BeIdenticalTo(root))
			Expect(leaf.Namespace()).To(BeIdenticalTo(mid))
			Expect(root.Namespace()).To(BeNil())
		})

		It("composes qualified names", func() {
			Expect(leaf.QualifiedName()).To(Equal("Root.Mid.Leaf"))
			Expect(leaf.QualifiedNameWith("::", `"`)).To(Equal(`"Root"::"Mid"::"Leaf"`))
			Expect(leaf.String()).To(Equal("Root.Mid.Leaf"))
		})

		It("keeps a single namespace", func() {
			other := Must(model.NewPackage(nil, "Other", model.Public))
			Expect(Must(other.AddOwnedElement(leaf))).To(BeIdenticalTo(mid))
			Expect(mid.OwnedElements()).To(BeEmpty())
			Expect(other.OwnedElements()).To(Equal([]model.Element{leaf}))
			Expect(leaf.Namespace()).To(BeIdenticalTo(other))
			Expect(leaf.QualifiedName()).To(Equal("Other.Leaf"))

			Expect(Must(leaf.SetNamespace(mid))).To(BeIdenticalTo(other))
			Expect(other.OwnedElements()).To(BeEmpty())
			Expect(mid.OwnedElements()).To(Equal([]model.Element{leaf}))
		})

		It("removes elements", func() {
			Expect(root.RemoveOwnedElement(leaf)).To(BeFalse())
			Expect(mid.RemoveOwnedElement(leaf)).To(BeTrue())
			Expect(mid.OwnedElements()).To(BeEmpty())
			Expect(leaf.Namespace()).To(BeNil())
			Expect(leaf.QualifiedName()).To(Equal("Leaf"))

			Must(leaf.SetNamespace(mid))
			Expect(Must(leaf.SetNamespace(nil))).To(BeIdenticalTo(mid))
			Expect(mid.OwnedElements()).To(BeEmpty())
		})

		It("rejects cycles", func() {
			_, err := mid.AddOwnedElement(root)
			Expect(err).To(MatchError(assoc.ErrCycle))
			_, err = root.AddOwnedElement(root)
			Expect(err).To(MatchError(assoc.ErrCycle))
			Expect(root.Namespace()).To(BeNil())
			Expect(mid.OwnedElements()).To(Equal([]model.Element{leaf}))
		})

		It("does not link partially constructed elements", func() {
			_, err := model.NewClass(mid, "", model.Public, false)
			Expect(err).To(MatchError(model.ErrRequired))
			_, err = model.NewClass(mid, "Other", "unknown", false)
			Expect(err).To(MatchError(model.ErrInvalid))
			Expect(mid.OwnedElements()).To(Equal([]model.Element{leaf}))
		})
	})

	Context("lookup", func() {
		It("finds direct children", func() {
			Expect(model.OwnedElement[*model.Package](root, "Mid")).To(BeIdenticalTo(mid))
			Expect(model.OwnedElement[*model.Class](root, "Mid")).To(BeNil())
			Expect(model.OwnedElement[model.Element](root, "Leaf")).To(BeNil())
			Expect(root.OwnedElementNamed("Mid")).To(BeIdenticalTo(mid))
		})

		It("finds nested elements", func() {
			Expect(model.OwnedElementDeep[*model.Class](root, "Mid.Leaf", ".", "")).To(BeIdenticalTo(leaf))
			Expect(model.OwnedElementDeep[model.Element](root, "Mid", ".", "")).To(BeIdenticalTo(mid))
			Expect(model.OwnedElementDeep[*model.Class](root, `"Mid"::"Leaf"`, "::", `"`)).To(BeIdenticalTo(leaf))
		})

		It("returns nil for unresolvable paths", func() {
			Expect(model.OwnedElementDeep[*model.Class](root, "Mid.Other", ".", "")).To(BeNil())
			Expect(model.OwnedElementDeep[*model.Class](root, "Other.Leaf", ".", "")).To(BeNil())
			Expect(model.OwnedElementDeep[*model.Package](root, "Mid.Leaf", ".", "")).To(BeNil())
			Expect(model.OwnedElementDeep[*model.Class](root, "Mid..Leaf", ".", "")).To(BeNil())
			Expect(model.OwnedElementDeep[*model.Class](root, "", ".", "")).To(BeNil())
		})

		It("takes the first match", func() {
			second := Must(model.NewClass(mid, "Leaf", model.Public, false))
			Expect(model.OwnedElementDeep[*model.Class](root, "Mid.Leaf", ".", "")).To(BeIdenticalTo(leaf))
			Expect(mid.RemoveOwnedElement(leaf)).To(BeTrue())
			Expect(model.OwnedElementDeep[*model.Class](root, "Mid.Leaf", ".", "")).To(BeIdenticalTo(second))
		})

		It("only descends namespaces", func() {
			r := Must(model.NewPackage(nil, "R", model.Public))
			Must(model.NewConstraint(r, "Mid", model.Public, model.Expression{Body: "true"}))
			m := Must(model.NewPackage(r, "Mid", model.Public))
			l := Must(model.NewClass(m, "Leaf", model.Public, false))
			Expect(model.OwnedElementDeep[*model.Class](r, "Mid.Leaf", ".", "")).To(BeIdenticalTo(l))
		})
	})

	Context("traversal", func() {
		var hidden *model.Package
		var secret, inner *model.Class

		BeforeEach(func() {
			hidden = Must(model.NewPackage(root, "Hidden", model.Private))
			inner = Must(model.NewClass(hidden, "Inner", model.Public, false))
			secret = Must(model.NewClass(mid, "Secret", model.Protected, false))
		})

		It("collects all contents", func() {
			Expect(root.AllContents()).To(Equal([]model.Element{mid, leaf, secret, hidden, inner}))
		})

		It("collects visible elements", func() {
			Expect(root.AllVisibleElements()).To(Equal([]model.Element{mid, leaf, inner}))
			Expect(hidden.AllVisibleElements()).To(Equal([]model.Element{inner}))
		})

		It("lists surrounding namespaces", func() {
			Expect(model.AllSurroundingNamespaces(inner)).To(Equal([]model.Namespace{hidden, root}))
			Expect(model.AllSurroundingNamespaces(root)).To(BeEmpty())
		})
	})

	Context("imports", func() {
		It("links importers", func() {
			other := Must(model.NewPackage(nil, "Other", model.Public))
			MustBeSuccessful(other.Import(leaf))
			Expect(other.ImportedElements()).To(Equal([]model.Element{leaf}))
			Expect(leaf.Importers()).To(Equal([]*model.Package{other}))
			Expect(leaf.Namespace()).To(BeIdenticalTo(mid))
			Expect(other.Unimport(leaf)).To(BeTrue())
			Expect(leaf.Importers()).To(BeEmpty())
		})
	})
})

var _ = Describe("qualified names", func() {
	DescribeTable("splitting",
		func(name, sep, surround string, expected []string) {
			Expect(model.SplitQualifiedName(name, sep, surround)).To(Equal(expected))
		},
		Entry("simple", "a.b.c", ".", "", []string{"a", "b", "c"}),
		Entry("single", "a", ".", "", []string{"a"}),
		Entry("empty segment", "a..c", ".", "", nil),
		Entry("surrounded", `"a.x"."b"`, ".", `"`, []string{"a.x", "b"}),
		Entry("unterminated", `"a"."b`, ".", `"`, nil),
		Entry("missing surround", `a."b"`, ".", `"`, nil),
		Entry("empty", "", ".", "", nil),
	)

	It("joins names", func() {
		Expect(model.JoinQualifiedName([]string{"a", "b"}, "/", "'")).To(Equal("'a'/'b'"))
	})
})
