package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/spec"
)

type Describe struct {
	ModelOptions
	cmd *cobra.Command
}

func NewDescribe(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe -f <file> {<qualified name>}",
		Short: "describe a model or some of its elements",
	}

	c := &Describe{
		ModelOptions: ModelOptions{mainopts: opts},
		cmd:          cmd,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	c.AddFlags(cmd)
	return cmd
}

func (c *Describe) Run(args []string) error {
	_, root, err := c.Build(c.cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		model.Dump(c.cmd.OutOrStdout(), root)
		return nil
	}
	for _, a := range args {
		e, err := spec.Resolve(root, a)
		if err != nil {
			return err
		}
		model.Dump(c.cmd.OutOrStdout(), e)
	}
	return nil
}

// elementLine formats an element for list outputs.
func elementLine(e model.Element) string {
	return fmt.Sprintf("%-16s %s", e.Kind(), e.QualifiedName())
}
