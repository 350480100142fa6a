package spec

import (
	"fmt"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/model"
)

// Validate checks the structure of a specification. References
// are resolved by Build.
func (s *Specification) Validate() error {
	if err := validateElement(ElementSpec{s.Name, s.Visibility}); err != nil {
		return err
	}
	if err := validateContent(&s.Content); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}

func validateElement(e ElementSpec) error {
	if e.Name == "" {
		return fmt.Errorf("name required")
	}
	if e.Visibility != "" && !e.Visibility.IsValid() {
		return fmt.Errorf("invalid visibility %q", e.Visibility)
	}
	return nil
}

// names detects duplicate element names in a namespace.
type names map[string]string

func (n names) add(kind string, e ElementSpec) error {
	if err := validateElement(e); err != nil {
		if e.Name == "" {
			return fmt.Errorf("%s: %w", kind, err)
		}
		return fmt.Errorf("%s %q: %w", kind, e.Name, err)
	}
	if k, ok := n[e.Name]; ok {
		return fmt.Errorf("%s %q: name already used by %s", kind, e.Name, k)
	}
	n[e.Name] = kind
	return nil
}

func validateContent(c *Content) error {
	n := names{}
	for _, p := range c.Packages {
		if err := n.add("package", p.ElementSpec); err != nil {
			return err
		}
		if err := validateContent(&p.Content); err != nil {
			return fmt.Errorf("package %q: %w", p.Name, err)
		}
	}
	for _, s := range c.Schemas {
		if err := n.add("schema", s.ElementSpec); err != nil {
			return err
		}
		if err := validateSchema(&s); err != nil {
			return fmt.Errorf("schema %q: %w", s.Name, err)
		}
	}
	for _, d := range c.DataTypes {
		if err := n.add("data type", d); err != nil {
			return err
		}
	}
	for _, cl := range c.Classes {
		if err := n.add("class", cl.ElementSpec); err != nil {
			return err
		}
		if err := validateClass(&cl); err != nil {
			return fmt.Errorf("class %q: %w", cl.Name, err)
		}
	}
	for _, a := range c.Associations {
		if err := n.add("association", a.ElementSpec); err != nil {
			return err
		}
		if err := validateAssociation(&a); err != nil {
			return fmt.Errorf("association %q: %w", a.Name, err)
		}
	}
	for _, cs := range c.Constraints {
		if err := n.add("constraint", cs.ElementSpec); err != nil {
			return err
		}
		if cs.Body == "" {
			return fmt.Errorf("constraint %q: body required", cs.Name)
		}
	}
	for _, d := range c.Dependencies {
		if err := n.add("dependency", d.ElementSpec); err != nil {
			return err
		}
		if len(d.Clients) == 0 {
			return fmt.Errorf("dependency %q: at least one client required", d.Name)
		}
		if len(d.Suppliers) == 0 {
			return fmt.Errorf("dependency %q: at least one supplier required", d.Name)
		}
	}
	for _, i := range c.Imports {
		if i == "" {
			return fmt.Errorf("empty import")
		}
	}
	return nil
}

func validateMultiplicity(m string) error {
	if m == "" {
		return nil
	}
	_, err := assoc.ParseMultiplicity(m)
	if err != nil {
		return fmt.Errorf("multiplicity %q: %w", m, err)
	}
	return nil
}

func validateClass(c *ClassSpec) error {
	n := names{}
	for _, a := range c.Attributes {
		if err := n.add("attribute", a.ElementSpec); err != nil {
			return err
		}
		if a.Type == "" {
			return fmt.Errorf("attribute %q: type required", a.Name)
		}
		if err := validateMultiplicity(a.Multiplicity); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}
	for _, o := range c.Operations {
		if err := n.add("operation", o.ElementSpec); err != nil {
			return err
		}
		if err := validateOperation(&o); err != nil {
			return fmt.Errorf("operation %q: %w", o.Name, err)
		}
	}
	for _, p := range c.Parents {
		if p == "" {
			return fmt.Errorf("empty parent")
		}
	}
	for _, k := range c.UniqueKeys {
		if err := n.add("unique key", k.ElementSpec); err != nil {
			return err
		}
		if len(k.Features) == 0 {
			return fmt.Errorf("unique key %q: at least one feature required", k.Name)
		}
	}
	for _, k := range c.KeyRelationships {
		if err := n.add("key relationship", k.ElementSpec); err != nil {
			return err
		}
		if k.UniqueKey == "" {
			return fmt.Errorf("key relationship %q: unique key required", k.Name)
		}
		if len(k.Features) == 0 {
			return fmt.Errorf("key relationship %q: at least one feature required", k.Name)
		}
	}
	for _, i := range c.Indexes {
		if err := n.add("index", i.ElementSpec); err != nil {
			return err
		}
		if err := validateIndexedFeatures(i.Sorted, i.Features); err != nil {
			return fmt.Errorf("index %q: %w", i.Name, err)
		}
	}
	return nil
}

func validateOperation(o *OperationSpec) error {
	n := names{}
	for _, p := range o.Parameters {
		if err := n.add("parameter", ElementSpec{Name: p.Name}); err != nil {
			return err
		}
		if p.Kind != "" && !p.Kind.IsValid() {
			return fmt.Errorf("parameter %q: invalid kind %q", p.Name, p.Kind)
		}
		if p.Type == "" {
			return fmt.Errorf("parameter %q: type required", p.Name)
		}
	}
	return nil
}

func validateAssociation(a *AssociationSpec) error {
	if len(a.Ends) < 2 {
		return fmt.Errorf("at least two ends required")
	}
	n := names{}
	composite := 0
	for _, e := range a.Ends {
		if err := n.add("end", e.ElementSpec); err != nil {
			return err
		}
		if e.Type == "" {
			return fmt.Errorf("end %q: type required", e.Name)
		}
		if err := validateMultiplicity(e.Multiplicity); err != nil {
			return fmt.Errorf("end %q: %w", e.Name, err)
		}
		if e.Aggregation != "" && !e.Aggregation.IsValid() {
			return fmt.Errorf("end %q: invalid aggregation %q", e.Name, e.Aggregation)
		}
		if e.Aggregation == model.AggregationComposite {
			composite++
		}
	}
	if composite > 1 {
		return fmt.Errorf("at most one composite end allowed")
	}
	return nil
}

func validateIndexedFeatures(sorted bool, features []IndexedFeatureSpec) error {
	if len(features) == 0 {
		return fmt.Errorf("at least one feature required")
	}
	for _, f := range features {
		if f.Feature == "" {
			return fmt.Errorf("feature name required")
		}
		if f.Ascending != nil && !sorted {
			return fmt.Errorf("feature %q: order requires a sorted index", f.Feature)
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

func validateSchema(s *SchemaSpec) error {
	n := names{}
	for _, t := range s.Tables {
		if err := n.add("table", t.ElementSpec); err != nil {
			return err
		}
		if err := validateTable(&t); err != nil {
			return fmt.Errorf("table %q: %w", t.Name, err)
		}
	}
	for _, i := range s.Indexes {
		if err := n.add("index", ElementSpec{Name: i.Name}); err != nil {
			return err
		}
		if i.Table == "" {
			return fmt.Errorf("index %q: table required", i.Name)
		}
		if err := validateIndexedFeatures(i.Sorted, i.Columns); err != nil {
			return fmt.Errorf("index %q: %w", i.Name, err)
		}
	}
	return nil
}

func validateTable(t *TableSpec) error {
	n := names{}
	for _, c := range t.Columns {
		if err := n.add("column", c.ElementSpec); err != nil {
			return err
		}
		if c.Type == "" {
			return fmt.Errorf("column %q: type required", c.Name)
		}
		if c.Length < 0 {
			return fmt.Errorf("column %q: invalid length %d", c.Name, c.Length)
		}
	}
	if pk := t.PrimaryKey; pk != nil {
		if err := n.add("primary key", ElementSpec{Name: pk.Name}); err != nil {
			return err
		}
		if len(pk.Columns) == 0 {
			return fmt.Errorf("primary key %q: at least one column required", pk.Name)
		}
	}
	for _, fk := range t.ForeignKeys {
		if err := n.add("foreign key", ElementSpec{Name: fk.Name}); err != nil {
			return err
		}
		if fk.References == "" {
			return fmt.Errorf("foreign key %q: referenced table required", fk.Name)
		}
		if len(fk.Columns) == 0 {
			return fmt.Errorf("foreign key %q: at least one column required", fk.Name)
		}
		for _, r := range []model.ReferentialRule{fk.OnDelete, fk.OnUpdate} {
			if r != "" && !r.IsValid() {
				return fmt.Errorf("foreign key %q: invalid referential rule %q", fk.Name, r)
			}
		}
	}
	return nil
}
