package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/goombaio/namegenerator"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/apimachinery/pkg/util/sets"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/spec"
)

const typesPackage = "types"

var fakeTypes = []string{"String", "Integer", "Boolean", "Date"}

type Fake struct {
	cmd *cobra.Command

	mainopts *Options
	name     string
	packages int
	classes  int
	seed     int64
	output   string
}

func NewFake(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake <options>",
		Short: "generate a random model specification",
	}

	c := &Fake{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.name, "name", "N", "fake", "name of the model")
	flags.IntVarP(&c.packages, "packages", "p", 2, "number of packages")
	flags.IntVarP(&c.classes, "classes", "c", 3, "number of classes per package")
	flags.Int64VarP(&c.seed, "seed", "S", 0, "random seed (0 for time based)")
	flags.StringVarP(&c.output, "output", "o", "", "output file")
	return cmd
}

func (c *Fake) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}
	if c.packages < 0 || c.classes < 0 {
		return fmt.Errorf("non-negative counts required")
	}

	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := NewGenerator(seed).Generate(c.name, c.packages, c.classes)
	if err := s.Validate(); err != nil {
		return err
	}
	log.Debug("generated model {{name}} with seed {{seed}}", "name", s.Name, "seed", seed)

	if c.output != "" {
		return spec.Save(c.mainopts.fs, c.output, s)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = c.cmd.OutOrStdout().Write(data)
	return err
}

// Generator creates random model specifications.
type Generator struct {
	names namegenerator.Generator
	used  sets.Set[string]
}

func NewGenerator(seed int64) *Generator {
	rand.Seed(seed)
	return &Generator{
		names: namegenerator.NewNameGenerator(seed),
	}
}

// name provides a name not used in the current namespace.
func (g *Generator) name() string {
	for {
		n := strings.ReplaceAll(g.names.Generate(), "-", "_")
		if !g.used.Has(n) {
			g.used.Insert(n)
			return n
		}
	}
}

func (g *Generator) Generate(name string, packages, classes int) *spec.Specification {
	s := &spec.Specification{Name: name}

	types := spec.PackageSpec{ElementSpec: spec.ElementSpec{Name: typesPackage}}
	for _, t := range fakeTypes {
		types.DataTypes = append(types.DataTypes, spec.ElementSpec{Name: t})
	}
	s.Packages = append(s.Packages, types)

	g.used = sets.New(typesPackage)
	var pnames []string
	for i := 0; i < packages; i++ {
		pnames = append(pnames, g.name())
	}

	for i, pn := range pnames {
		p := spec.PackageSpec{ElementSpec: spec.ElementSpec{Name: pn}}
		g.used = sets.New[string]()
		for j := 0; j < classes; j++ {
			p.Classes = append(p.Classes, g.class(pn, p.Classes))
		}
		if i > 0 {
			p.Dependencies = append(p.Dependencies, spec.DependencySpec{
				ElementSpec: spec.ElementSpec{Name: "uses_" + pnames[i-1]},
				Kind:        model.DependencyUsage,
				Clients:     []string{pn},
				Suppliers:   []string{pnames[i-1]},
			})
		}
		s.Packages = append(s.Packages, p)
	}
	return s
}

func (g *Generator) class(pkg string, existing []spec.ClassSpec) spec.ClassSpec {
	c := spec.ClassSpec{ElementSpec: spec.ElementSpec{Name: g.name()}}
	if len(existing) > 0 && rand.Intn(2) == 0 {
		c.Parents = []string{pkg + "." + existing[rand.Intn(len(existing))].Name}
	}

	local := sets.New[string]()
	count := rand.IntnRange(1, 4)
	for len(c.Attributes) < count {
		n := strings.ReplaceAll(g.names.Generate(), "-", "_")
		if local.Has(n) {
			continue
		}
		local.Insert(n)
		a := spec.AttributeSpec{
			ElementSpec: spec.ElementSpec{Name: n},
			Type:        typesPackage + "." + fakeTypes[rand.Intn(len(fakeTypes))],
		}
		if rand.Intn(3) == 0 {
			a.Multiplicity = "0..1"
		}
		c.Attributes = append(c.Attributes, a)
	}
	c.UniqueKeys = []spec.KeySpec{{
		ElementSpec: spec.ElementSpec{Name: c.Name + "_key"},
		Features:    []string{c.Attributes[0].Name},
	}}
	return c
}
