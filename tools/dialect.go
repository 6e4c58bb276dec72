package tools

import (
	"io"

	"github.com/named-data/tlvnode/std/log"
	"github.com/named-data/tlvnode/std/utils/toolutils"
	"github.com/spf13/cobra"
)

type DialectPrinter struct {
	opts *Options
}

func CmdDialect(opts *Options) *cobra.Command {
	dp := DialectPrinter{opts: opts}

	return &cobra.Command{
		GroupID: "config",
		Use:     "dialect",
		Short:   "Print the effective dialect as YAML",
		Long: `Print the dialect resolved from defaults, the configuration file and flags.
The output can be used as a configuration file.`,
		Args:    cobra.NoArgs,
		Example: `  tlvnode dialect --tag-width 1 --order little > dialect.yml`,
		Run:     dp.run,
	}
}

func (dp *DialectPrinter) String() string {
	return "dialect"
}

func (dp *DialectPrinter) run(cmd *cobra.Command, _ []string) {
	if err := dp.print(cmd.OutOrStdout()); err != nil {
		log.Fatal(dp, "Unable to print dialect", "err", err)
	}
}

func (dp *DialectPrinter) print(out io.Writer) error {
	d, err := dp.opts.Dialect()
	if err != nil {
		return err
	}
	return toolutils.WriteYaml(out, DialectConfig{Dialect: &d})
}
