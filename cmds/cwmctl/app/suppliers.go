package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/spec"
)

type Suppliers struct {
	ModelOptions
	cmd *cobra.Command

	clients bool
	direct  bool
}

func NewSuppliers(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers -f <file> <qualified name>",
		Short: "list the suppliers of a model element",
		Long: `
List the elements an element depends on, directly or indirectly,
following the dependencies of the model. With --clients the
elements depending on the given one are listed.
`,
	}

	c := &Suppliers{
		ModelOptions: ModelOptions{mainopts: opts},
		cmd:          cmd,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.AddFlags(cmd)
	flags := cmd.Flags()
	flags.BoolVarP(&c.clients, "clients", "c", false, "list clients instead of suppliers")
	flags.BoolVarP(&c.direct, "direct", "d", false, "list direct dependencies only")
	return cmd
}

func (c *Suppliers) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one element name expected")
	}
	_, root, err := c.Build(c.cmd)
	if err != nil {
		return err
	}
	e, err := spec.Resolve(root, args[0])
	if err != nil {
		return err
	}

	var list []model.Element
	switch {
	case c.clients && c.direct:
		list = model.Clients(e)
	case c.clients:
		list = model.AllClients(e)
	case c.direct:
		list = model.Suppliers(e)
	default:
		list = model.AllSuppliers(e)
	}

	if len(list) == 0 {
		fmt.Fprintf(c.cmd.OutOrStdout(), "no elements found\n")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", elementLine(s))
	}
	return nil
}
