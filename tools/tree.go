package tools

import (
	"fmt"
	"io"
	"strings"

	enc "github.com/named-data/tlvnode/std/encoding"
	"github.com/named-data/tlvnode/std/log"
	"github.com/named-data/tlvnode/std/utils"
	"github.com/spf13/cobra"
)

type RecordTree struct {
	opts     *Options
	maxDepth int
}

func CmdTree(opts *Options) *cobra.Command {
	rt := RecordTree{opts: opts}

	cmd := &cobra.Command{
		GroupID: "records",
		Use:     "tree RECORD-HEX",
		Short:   "Print the nested structure of a record",
		Long: `Print a record and every nested record found in its value.
A value is treated as nested records when it splits exactly into complete
records of the same dialect; otherwise it is printed as a leaf.`,
		Args:    cobra.ExactArgs(1),
		Example: `  tlvnode tree 0020000b00010001aa0002000000`,
		Run:     rt.run,
	}

	cmd.Flags().IntVar(&rt.maxDepth, "max-depth", -1, "do not descend below this depth (-1 for unlimited)")
	return cmd
}

func (rt *RecordTree) String() string {
	return "tree"
}

func (rt *RecordTree) run(cmd *cobra.Command, args []string) {
	if err := rt.print(cmd.OutOrStdout(), args[0]); err != nil {
		log.Fatal(rt, "Unable to print record tree", "err", err)
	}
}

func (rt *RecordTree) print(out io.Writer, arg string) error {
	d, err := rt.opts.Dialect()
	if err != nil {
		return err
	}

	text, err := rt.opts.recordHex(arg)
	if err != nil {
		return err
	}

	root := enc.NewNode(d)
	if err = root.DecodeHex(text); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	count := root.Walk(func(depth int, n *enc.Node) bool {
		descend := rt.maxDepth < 0 || depth < rt.maxDepth
		children, err := n.Children()
		leaf := err != nil || len(children) == 0 || !descend

		detail := utils.If(leaf,
			"value="+enc.EncodeHex(n.Value(), ""),
			fmt.Sprintf("children=%d", len(children)))
		fmt.Fprintf(out, "%s%s len=%d %s\n",
			strings.Repeat("  ", depth), enc.EncodeHex(n.Tag(), ""), n.Length(), detail)
		return descend
	})

	_, err = fmt.Fprintf(out, "nodes=%d\n", count)
	return err
}
