package tools

import (
	"fmt"
	"io"

	enc "github.com/named-data/tlvnode/std/encoding"
	"github.com/named-data/tlvnode/std/log"
	"github.com/spf13/cobra"
)

type RecordNester struct {
	opts *Options
	tag  tagFlags
	sep  string
}

func CmdNest(opts *Options) *cobra.Command {
	rn := RecordNester{opts: opts}

	cmd := &cobra.Command{
		GroupID: "records",
		Use:     "nest CHILD-HEX...",
		Short:   "Wrap records inside a new parent record",
		Long: `Build a record whose value is the concatenation of the given child records.
Every child must be a complete record of the same dialect.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  tlvnode nest --tag 0x20 00010001aa 00020000
  tlvnode nest --tag 1 $(tlvnode encode --tag 2 --value hi)`,
		Run: rn.run,
	}

	rn.tag.addFlags(cmd)
	cmd.Flags().StringVar(&rn.sep, "sep", "", "separator placed between encoded bytes")
	cmd.MarkFlagsMutuallyExclusive("tag", "tag-hex")
	return cmd
}

func (rn *RecordNester) String() string {
	return "nest"
}

func (rn *RecordNester) run(cmd *cobra.Command, args []string) {
	if err := rn.nest(cmd.OutOrStdout(), args); err != nil {
		log.Fatal(rn, "Unable to nest records", "err", err)
	}
}

func (rn *RecordNester) nest(out io.Writer, args []string) error {
	d, err := rn.opts.Dialect()
	if err != nil {
		return err
	}

	children := make([]*enc.Node, 0, len(args))
	for i, arg := range args {
		text, err := rn.opts.recordHex(arg)
		if err != nil {
			return err
		}
		child := enc.NewNode(d)
		if err = child.DecodeHex(text); err != nil {
			return fmt.Errorf("invalid child record %d: %w", i, err)
		}
		children = append(children, child)
	}

	parent := enc.NewNode(d)
	if err = rn.tag.apply(parent); err != nil {
		return err
	}
	if err = parent.SetChildren(children...); err != nil {
		return err
	}

	log.Debug(rn, "Nested records", "parent", parent, "children", len(children))
	_, err = fmt.Fprintln(out, parent.Hex(rn.sep))
	return err
}
