package cmd

import (
	"github.com/named-data/tlvnode/std/log"
	"github.com/named-data/tlvnode/std/utils"
	"github.com/named-data/tlvnode/tools"
	"github.com/spf13/cobra"
)

const banner = `
  _   _         _   _           _
 | |_| |_ __ __| \ | | ___   __| | ___
 | __| \ \ / / |  \| |/ _ \ / _  |/ _ \
 | |_| |\ V /  | |\  | (_) | (_| |  __/
  \__|_| \_/   |_| \_|\___/ \__,_|\___|

Fixed-width Tag-Length-Value records
`

// NewCmdTlvNode builds the root command.
func NewCmdTlvNode() *cobra.Command {
	opts := &tools.Options{}

	root := &cobra.Command{
		Use:     "tlvnode",
		Short:   "Fixed-width Tag-Length-Value record tool",
		Long:    banner[1:],
		Version: utils.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := opts.ApplyLogLevel(); err != nil {
				log.Fatal(opts, "Invalid log level", "err", err)
			}
		},
	}

	root.CompletionOptions.HiddenDefaultCmd = true
	root.PersistentFlags().BoolP("help", "h", false, "Print usage")
	root.PersistentFlags().Lookup("help").Hidden = true
	opts.AddFlags(root)

	root.AddGroup(&cobra.Group{ID: "records", Title: "Record Tools"})
	root.AddCommand(tools.CmdEncode(opts))
	root.AddCommand(tools.CmdDecode(opts))
	root.AddCommand(tools.CmdNest(opts))
	root.AddCommand(tools.CmdTree(opts))

	root.AddGroup(&cobra.Group{ID: "config", Title: "Configuration"})
	root.AddCommand(tools.CmdDialect(opts))

	return root
}

func init() {
	cobra.EnableCommandSorting = false
}
