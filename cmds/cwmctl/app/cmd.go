package app

import (
	"fmt"
	"io"
	"os"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/cwm/pkg/factory"
	_ "github.com/mandelsoft/cwm/pkg/factory/fun"
	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/spec"
	"github.com/mandelsoft/cwm/pkg/utils"
)

type Options struct {
	factory string
	level   string
	fs      vfs.FileSystem
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	opts.factory = os.Getenv("CWM_FACTORY")
	if opts.factory == "" {
		opts.factory = factory.DEFAULT
	}
	opts.level = os.Getenv("CWM_LOG_LEVEL")

	maincmd := &cobra.Command{
		Use:   "cwmctl <options> <cmd> <args>",
		Short: "inspect warehouse models",
		Long: `
This command builds warehouse models from model specification
files and navigates the resulting object graph.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.level)
		},
	}

	flags := maincmd.PersistentFlags()

	flags.StringVarP(&opts.level, "log-level", "L", opts.level, "log level")
	flags.StringVarP(&opts.factory, "factory", "F", opts.factory, fmt.Sprintf("factory implementation %v", factory.Keys()))

	maincmd.AddCommand(NewDescribe(opts))
	maincmd.AddCommand(NewSuppliers(opts))
	maincmd.AddCommand(NewLookup(opts))
	maincmd.AddCommand(NewFake(opts))
	return maincmd
}

// ModelOptions are the options of commands working on a model file.
type ModelOptions struct {
	mainopts *Options
	file     string
}

func (o *ModelOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "model specification file (- for stdin)")
}

// Build loads the model specification and creates the model
// with the selected factory.
func (o *ModelOptions) Build(cmd *cobra.Command) (factory.Cwm, *model.Package, error) {
	var s *spec.Specification
	var err error

	switch o.file {
	case "":
		return nil, nil, fmt.Errorf("model file required")
	case "-":
		var data []byte
		data, err = io.ReadAll(cmd.InOrStdin())
		if err == nil {
			s, err = spec.Parse(data)
		}
	default:
		s, err = spec.Load(o.mainopts.fs, o.file)
	}
	if err != nil {
		return nil, nil, err
	}

	cwm, err := factory.Create(o.mainopts.factory)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("building model {{name}} with factory {{factory}}", "name", s.Name, "factory", cwm.Name())
	root, err := spec.Build(cwm, s)
	if err != nil {
		return nil, nil, err
	}
	return cwm, root, nil
}
