package spec_test

import (
	"github.com/mandelsoft/vfs/pkg/vfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/extent"
	"github.com/mandelsoft/cwm/pkg/factory"
	_ "github.com/mandelsoft/cwm/pkg/factory/fun"
	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/spec"
)

var _ = Describe("building", func() {
	var fs vfs.FileSystem
	var cwm factory.Cwm

	BeforeEach(func() {
		fs = Must(TestFileSystem("testdata", true))
		cwm = Must(factory.Create(""))
	})

	AfterEach(func() {
		vfs.Cleanup(fs)
	})

	Context("object model", func() {
		var root, types, sales *model.Package
		var str, integer *model.DataType
		var party, customer, order *model.Class

		BeforeEach(func() {
			root = Must(spec.Build(cwm, Must(spec.Load(fs, "testdata/sales.yaml"))))
			types = model.OwnedElement[*model.Package](root, "Types")
			sales = model.OwnedElement[*model.Package](root, "Sales")
			str = model.OwnedElementDeep[*model.DataType](root, "Types.String", ".", "")
			integer = model.OwnedElementDeep[*model.DataType](root, "Types.Integer", ".", "")
			party = model.OwnedElement[*model.Class](sales, "Party")
			customer = model.OwnedElement[*model.Class](sales, "Customer")
			order = model.OwnedElement[*model.Class](sales, "Order")
		})

		It("creates the namespaces", func() {
			Expect(root.Kind()).To(Equal(model.KindPackage))
			Expect(root.Visibility()).To(Equal(model.Public))
			Expect(root.Namespace()).To(BeNil())
			Expect(types).NotTo(BeNil())
			Expect(sales).NotTo(BeNil())
			Expect(str).NotTo(BeNil())
			Expect(integer).NotTo(BeNil())
			Expect(party.IsAbstract()).To(BeTrue())
			Expect(customer.QualifiedName()).To(Equal("Warehouse.Sales.Customer"))
		})

		It("creates features", func() {
			id := model.FindFeature[*model.Attribute](party, "id")
			Expect(id.Type()).To(BeIdenticalTo(integer))
			Expect(id.Multiplicity().String()).To(Equal("1"))

			name := model.FindFeature[*model.Attribute](customer, "name")
			Expect(name.Type()).To(BeIdenticalTo(str))
			Expect(name.Multiplicity().String()).To(Equal("0..1"))
			Expect(name.InitialValue().Body).To(Equal("''"))

			op := model.FindFeature[*model.Operation](customer, "rename")
			Expect(op.Parameters()).To(HaveLen(2))
			Expect(op.Parameters()[0].ParameterKind()).To(Equal(model.In))
			ret := op.ParametersOfKind(model.Return)
			Expect(ret).To(HaveLen(1))
			Expect(ret[0].Name()).To(Equal("result"))
			Expect(str.TypedParameters()).To(HaveLen(2))
		})

		It("links generalizations", func() {
			Expect(customer.Parents()).To(Equal([]model.Classifier{party}))
			Expect(party.Children()).To(Equal([]model.Classifier{customer}))
			Expect(model.FindFeature[*model.Attribute](customer, "id")).To(BeIdenticalTo(model.FindFeature[*model.Attribute](party, "id")))
			Expect(customer.Generalizations()[0].Name()).To(Equal("Customer->Party"))
		})

		It("creates keys and indexes", func() {
			id := model.FindFeature[*model.Attribute](party, "id")
			pk := model.OwnedElement[*model.UniqueKey](party, "party_pk")
			Expect(pk.Features()).To(Equal([]model.StructuralFeature{id}))

			kr := model.OwnedElement[*model.KeyRelationship](order, "order_customer")
			Expect(kr.UniqueKey()).To(BeIdenticalTo(pk))
			Expect(kr.Features()).To(Equal([]model.StructuralFeature{model.FindFeature[model.StructuralFeature](order, "customer")}))

			idx := model.OwnedElement[*model.Index](customer, "by_name")
			Expect(idx.SpannedClass()).To(BeIdenticalTo(customer))
			Expect(idx.IsSorted()).To(BeTrue())
			Expect(idx.Features()).To(Equal([]model.StructuralFeature{model.FindFeature[model.StructuralFeature](customer, "name"), id}))
			Expect(*idx.IndexedFeatures()[0].IsAscending()).To(BeTrue())
			Expect(idx.IndexedFeatures()[1].IsAscending()).To(BeNil())
		})

		It("creates associations", func() {
			as := model.OwnedElement[*model.Association](sales, "places")
			Expect(as.Ends()).To(HaveLen(2))
			buyer := as.End("buyer")
			Expect(buyer.Type()).To(BeIdenticalTo(customer))
			Expect(buyer.IsComposite()).To(BeTrue())
			Expect(buyer.IsNavigable()).To(BeTrue())
			orders := as.End("orders")
			Expect(orders.Type()).To(BeIdenticalTo(order))
			Expect(orders.Multiplicity().String()).To(Equal("* ordered"))
			Expect(orders.IsNavigable()).To(BeFalse())
			Expect(orders.Aggregation()).To(Equal(model.AggregationNone))
		})

		It("creates constraints, dependencies and imports", func() {
			number := model.FindFeature[*model.Attribute](order, "number")
			c := model.OwnedElement[*model.Constraint](sales, "positive")
			Expect(c.Body()).To(Equal(model.Expression{Language: "ocl", Body: "self.number > 0"}))
			Expect(c.ConstrainedElements()).To(Equal([]model.Element{number}))
			Expect(number.Constraints()).To(Equal([]*model.Constraint{c}))

			Expect(model.Suppliers(sales)).To(Equal([]model.Element{types}))
			Expect(model.Clients(types)).To(Equal([]model.Element{sales}))
			Expect(sales.ImportedElements()).To(Equal([]model.Element{str}))
		})

		It("fills the extent", func() {
			x := cwm.Extent()
			Expect(x.Lookup(root.ID())).To(BeIdenticalTo(root))
			Expect(x.Lookup(customer.ID())).To(BeIdenticalTo(customer))
			Expect(extent.Of[*model.Class](x)).To(ConsistOf(party, customer, order))
			Expect(x.ElementsOfKind(model.KindGeneralization)).To(HaveLen(1))
			Expect(x.ElementsOfKind(model.KindAssociationEnd)).To(HaveLen(2))
			Expect(x.ElementsOfKind(model.KindIndexedFeature)).To(HaveLen(2))
			Expect(x.Roots()).To(ConsistOf(root))
		})
	})

	Context("relational model", func() {
		var root, schema *model.Package
		var customers, orders *model.Class

		BeforeEach(func() {
			root = Must(spec.Build(cwm, Must(spec.Load(fs, "testdata/relational.yaml"))))
			schema = model.OwnedElement[*model.Package](root, "sales")
			customers = model.OwnedElement[*model.Class](schema, "customers")
			orders = model.OwnedElement[*model.Class](schema, "orders")
		})

		It("creates tables and columns", func() {
			Expect(root.Kind()).To(Equal(model.KindCatalog))
			Expect(schema.Kind()).To(Equal(model.KindSchema))
			Expect(model.Tables(schema)).To(Equal([]*model.Class{customers, orders}))
			Expect(model.IsTemporary(orders)).To(BeTrue())

			cols := model.Columns(customers)
			Expect(cols).To(HaveLen(2))
			Expect(model.IsNullable(cols[1])).To(BeTrue())
			Expect(model.Length(cols[1])).To(Equal(80))
			Expect(cols[1].Type().Name()).To(Equal("VARCHAR"))
		})

		It("creates primary and foreign keys", func() {
			pk := model.PrimaryKey(customers)
			Expect(pk.Name()).To(Equal("customers_pk"))
			fks := model.ForeignKeys(orders)
			Expect(fks).To(HaveLen(1))
			Expect(fks[0].UniqueKey()).To(BeIdenticalTo(pk))
			Expect(model.DeleteRule(fks[0])).To(Equal(model.RuleCascade))
			Expect(model.UpdateRule(fks[0])).To(Equal(model.ReferentialRule("")))
		})

		It("creates sql indexes", func() {
			idx := model.OwnedElement[*model.Index](schema, "customers_name")
			Expect(idx.Kind()).To(Equal(model.KindSQLIndex))
			Expect(idx.SpannedClass()).To(BeIdenticalTo(customers))
			Expect(model.Filter(idx)).To(Equal("name IS NOT NULL"))
			Expect(*idx.IndexedFeatures()[0].IsAscending()).To(BeTrue())
		})
	})

	Context("errors", func() {
		It("reports unresolved references", func() {
			s := Must(spec.Parse([]byte(`
name: M
classes:
  - name: C
    attributes:
      - name: a
        type: Missing
`)))
			_, err := spec.Build(cwm, s)
			MustFailWithMessage(err, `M: M.C: attribute "a": classifier "Missing" not found`)
		})

		It("reports unresolved features", func() {
			s := Must(spec.Parse([]byte(`
name: M
dataTypes:
  - name: T
classes:
  - name: C
    attributes:
      - name: a
        type: T
    uniqueKeys:
      - name: k
        features: [ b ]
`)))
			_, err := spec.Build(cwm, s)
			MustFailWithMessage(err, `M: M.C: unique key "k": feature "b" not found in C`)
		})

		It("rejects generalization cycles", func() {
			s := Must(spec.Parse([]byte(`
name: M
classes:
  - name: A
    parents: [ B ]
  - name: B
    parents: [ A ]
`)))
			_, err := spec.Build(cwm, s)
			Expect(err).To(MatchError(model.ErrCycle))
		})

		It("requires a primary key for foreign keys", func() {
			s := Must(spec.Parse([]byte(`
name: M
catalog: true
dataTypes:
  - name: T
schemas:
  - name: s
    tables:
      - name: t
        columns:
          - name: c
            type: T
      - name: u
        columns:
          - name: c
            type: T
        foreignKeys:
          - name: fk
            references: s.t
            columns: [ c ]
`)))
			_, err := spec.Build(cwm, s)
			MustFailWithMessage(err, `M: M.s.u: foreign key "fk": table "s.t" has no primary key`)
		})
	})
})
