package fun_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/factory"
	"github.com/mandelsoft/cwm/pkg/factory/fun"
	"github.com/mandelsoft/cwm/pkg/model"
)

var _ = Describe("reference factory", func() {
	var cwm factory.Cwm

	BeforeEach(func() {
		cwm = Must(factory.Create(""))
	})

	It("is registered", func() {
		Expect(factory.Keys()).To(ContainElement(fun.NAME))
		Expect(cwm.Name()).To(Equal(factory.DEFAULT))
		Expect(Must(factory.Create(fun.NAME)).Extent()).NotTo(BeIdenticalTo(cwm.Extent()))

		_, err := factory.Create("unknown")
		MustFailWithMessage(err, `unknown factory "unknown"`)
	})

	It("adds created elements to the extent", func() {
		f := cwm.Foundation()
		o := cwm.ObjectModel()

		p := Must(f.CreatePackage(nil, "P", model.Public))
		str := Must(f.CreateDataType(p, "String", model.Public))
		c := Must(o.CreateClass(p, "C", model.Public, false))
		a := Must(o.CreateAttribute(c, "a", model.Public, str, assoc.One))
		as := Must(o.CreateAssociation(p, "A", model.Public,
			model.EndSpec{Name: "x", Type: c, Multiplicity: assoc.ZeroOrMore},
			model.EndSpec{Name: "y", Type: str, Multiplicity: assoc.One},
		))
		idx := Must(f.CreateIndex(p, "idx", model.Public, c, false, false, model.IndexedFeatureSpec{Feature: a}))

		x := cwm.Extent()
		Expect(x.Lookup(a.ID())).To(BeIdenticalTo(a))
		Expect(x.ElementsOfKind(model.KindAssociationEnd)).To(HaveLen(2))
		Expect(x.ElementsOfKind(model.KindIndexedFeature)).To(Equal([]model.Element{idx.IndexedFeatures()[0]}))
		Expect(x.Roots()).To(Equal([]model.Element{p}))
		Expect(as.Ends()).To(HaveLen(2))
		Expect(x.Len()).To(Equal(9))
	})

	It("does not add failed creations", func() {
		_, err := cwm.Resource().CreateTable(nil, "", model.Public, false)
		Expect(err).To(MatchError(model.ErrRequired))
		Expect(cwm.Extent().Len()).To(Equal(0))
	})

	It("creates relational elements", func() {
		r := cwm.Resource()
		cat := Must(r.CreateCatalog(nil, "db", model.Public))
		s := Must(r.CreateSchema(cat, "public", model.Public))
		num := Must(cwm.Foundation().CreateDataType(cat, "INTEGER", model.Public))
		t := Must(r.CreateTable(s, "t", model.Public, false))
		id := Must(r.CreateColumn(t, "id", model.Public, num, false, 0))
		pk := Must(r.CreatePrimaryKey(t, "pk", id))
		u := Must(r.CreateTable(s, "u", model.Public, false))
		ref := Must(r.CreateColumn(u, "ref", model.Public, num, true, 0))
		fk := Must(r.CreateForeignKey(u, "fk", pk, model.RuleNoAction, model.RuleNoAction, ref))
		Must(r.CreateSQLIndex(s, "u_ref", u, "", false, false, model.IndexedFeatureSpec{Feature: ref}))

		Expect(fk.UniqueKey()).To(BeIdenticalTo(pk))
		Expect(cwm.Extent().Kinds()).To(Equal([]string{
			model.KindCatalog, model.KindColumn, model.KindDataType, model.KindForeignKey,
			model.KindIndexedFeature, model.KindPrimaryKey, model.KindSQLIndex, model.KindSchema, model.KindTable,
		}))
	})
})
