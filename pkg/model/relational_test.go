package model_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/mandelsoft/cwm/pkg/testutils"

	"github.com/mandelsoft/cwm/pkg/model"
)

var _ = Describe("relational resources", func() {
	var catalog, schema *model.Package
	var varchar, integer *model.DataType
	var customers, orders *model.Class
	var custID, custName, orderID, orderCust *model.Attribute
	var pk *model.UniqueKey

	BeforeEach(func() {
		catalog = Must(model.NewCatalog(nil, "warehouse", model.Public))
		schema = Must(model.NewSchema(catalog, "sales", model.Public))
		varchar = Must(model.NewDataType(catalog, "VARCHAR", model.Public))
		integer = Must(model.NewDataType(catalog, "INTEGER", model.Public))
		customers = Must(model.NewTable(schema, "customers", model.Public, false))
		orders = Must(model.NewTable(schema, "orders", model.Public, true))
		custID = Must(model.NewColumn(customers, "id", model.Public, integer, false, 0))
		custName = Must(model.NewColumn(customers, "name", model.Public, varchar, true, 80))
		orderID = Must(model.NewColumn(orders, "id", model.Public, integer, false, 0))
		orderCust = Must(model.NewColumn(orders, "customer", model.Public, integer, false, 0))
		pk = Must(model.NewPrimaryKey(customers, "customers_pk", custID))
	})

	It("creates relational kinds", func() {
		Expect(catalog.Kind()).To(Equal(model.KindCatalog))
		Expect(schema.Kind()).To(Equal(model.KindSchema))
		Expect(customers.Kind()).To(Equal(model.KindTable))
		Expect(custID.Kind()).To(Equal(model.KindColumn))
		Expect(pk.Kind()).To(Equal(model.KindPrimaryKey))
		Expect(model.IsKind(orders, model.KindTable)).To(BeTrue())
		Expect(model.IsKind(nil, model.KindTable)).To(BeFalse())
	})

	It("provides column attributes", func() {
		Expect(model.IsNullable(custID)).To(BeFalse())
		Expect(model.IsNullable(custName)).To(BeTrue())
		Expect(custName.Multiplicity().String()).To(Equal("0..1"))
		Expect(model.Length(custName)).To(Equal(80))
		Expect(model.Length(custID)).To(Equal(0))
		Expect(model.IsTemporary(orders)).To(BeTrue())
		Expect(model.IsTemporary(customers)).To(BeFalse())

		_, err := model.NewColumn(orders, "x", model.Public, integer, false, -1)
		Expect(err).To(MatchError(model.ErrInvalid))
		Expect(model.Columns(orders)).To(Equal([]*model.Attribute{orderID, orderCust}))
	})

	It("navigates tables and keys", func() {
		fk := Must(model.NewForeignKey(orders, "orders_customer_fk", pk, model.RuleCascade, model.RuleRestrict, orderCust))
		Expect(fk.Kind()).To(Equal(model.KindForeignKey))
		Expect(model.DeleteRule(fk)).To(Equal(model.RuleCascade))
		Expect(model.UpdateRule(fk)).To(Equal(model.RuleRestrict))
		Expect(model.Tables(schema)).To(Equal([]*model.Class{customers, orders}))
		Expect(model.PrimaryKey(customers)).To(BeIdenticalTo(pk))
		Expect(model.PrimaryKey(orders)).To(BeNil())
		Expect(model.ForeignKeys(orders)).To(Equal([]*model.KeyRelationship{fk}))
		Expect(pk.KeyRelationships()).To(Equal([]*model.KeyRelationship{fk}))

		_, err := model.NewForeignKey(orders, "bad", pk, "explode", "", orderCust)
		Expect(err).To(MatchError(model.ErrInvalid))
		Expect(model.ForeignKeys(orders)).To(HaveLen(1))
	})

	It("resolves qualified column names", func() {
		Expect(model.OwnedElementDeep[*model.Class](catalog, "sales.orders", ".", "")).To(BeIdenticalTo(orders))
		Expect(model.FindFeature[*model.Attribute](orders, "orders.customer")).To(BeIdenticalTo(orderCust))
		Expect(orderCust.QualifiedNameWith(".", `"`)).To(Equal(`"warehouse"."sales"."orders"."customer"`))
	})

	It("creates sql indexes", func() {
		idx := Must(model.NewSQLIndex(schema, "customers_name", customers, "name IS NOT NULL", true, false, model.IndexedFeatureSpec{Feature: custName}))
		Expect(idx.Kind()).To(Equal(model.KindSQLIndex))
		Expect(model.Filter(idx)).To(Equal("name IS NOT NULL"))
		Expect(customers.Indexes()).To(Equal([]*model.Index{idx}))
		Expect(idx.Namespace()).To(BeIdenticalTo(schema))
	})

	It("dumps the model", func() {
		Must(model.NewForeignKey(orders, "orders_customer_fk", pk, model.RuleCascade, "", orderCust))
		buf := &bytes.Buffer{}
		model.Dump(buf, catalog)
		out := buf.String()
		Expect(out).To(HavePrefix("- Catalog warehouse (public)\n"))
		Expect(out).To(ContainSubstring("  - Schema sales (public)\n"))
		Expect(out).To(ContainSubstring("      relational.temporary: true\n"))
		Expect(out).To(ContainSubstring("      - Column name: warehouse.VARCHAR[0..1]\n"))
		Expect(out).To(ContainSubstring("        features: warehouse.sales.customers.id\n"))
		Expect(out).To(ContainSubstring("        unique key: warehouse.sales.customers.customers_pk\n"))
	})
})
