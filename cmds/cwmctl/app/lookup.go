package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/spec"
)

type Lookup struct {
	ModelOptions
	cmd *cobra.Command

	kind      string
	contents  bool
	visible   bool
	surrounds bool
}

func NewLookup(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup -f <file> {<qualified name>}",
		Short: "look up model elements by their qualified names",
	}

	c := &Lookup{
		ModelOptions: ModelOptions{mainopts: opts},
		cmd:          cmd,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.AddFlags(cmd)
	flags := cmd.Flags()
	flags.StringVarP(&c.kind, "kind", "k", "", "required element kind")
	flags.BoolVarP(&c.contents, "contents", "r", false, "list all contents of a namespace")
	flags.BoolVarP(&c.visible, "visible", "V", false, "list all visible elements of a namespace")
	flags.BoolVarP(&c.surrounds, "surrounding", "s", false, "list the surrounding namespaces")
	return cmd
}

func (c *Lookup) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one element name expected")
	}
	_, root, err := c.Build(c.cmd)
	if err != nil {
		return err
	}

	out := c.cmd.OutOrStdout()
	for _, a := range args {
		e, err := spec.Resolve(root, a)
		if err != nil {
			return err
		}
		if c.kind != "" && e.Kind() != c.kind {
			return fmt.Errorf("%s is a %s, not a %s", a, e.Kind(), c.kind)
		}
		fmt.Fprintf(out, "%s\n", elementLine(e))

		var list []model.Element
		switch {
		case c.surrounds:
			for _, ns := range model.AllSurroundingNamespaces(e) {
				list = append(list, ns)
			}
		case c.contents || c.visible:
			ns, ok := e.(model.Namespace)
			if !ok {
				return fmt.Errorf("%s is no namespace", a)
			}
			if c.visible {
				list = model.AllVisibleElements(ns)
			} else {
				list = model.AllContents(ns)
			}
		}
		for _, m := range list {
			fmt.Fprintf(out, "  %s\n", elementLine(m))
		}
	}
	return nil
}
