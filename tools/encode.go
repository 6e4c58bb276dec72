package tools

import (
	"fmt"
	"io"

	enc "github.com/named-data/tlvnode/std/encoding"
	"github.com/named-data/tlvnode/std/log"
	"github.com/spf13/cobra"
)

type RecordEncoder struct {
	opts *Options
	tag  tagFlags

	valueHex  string
	valueText string
	sep       string
}

func CmdEncode(opts *Options) *cobra.Command {
	re := RecordEncoder{opts: opts}

	cmd := &cobra.Command{
		GroupID: "records",
		Use:     "encode",
		Short:   "Encode a single TLV record",
		Long: `Encode a single TLV record from a tag and a value.
The length field is computed from the value.
The record is written to stdout as lowercase hex.`,
		Args: cobra.NoArgs,
		Example: `  tlvnode encode --tag 1 --value-hex 010203
  tlvnode encode --tag 0x0a --value hello --sep :
  tlvnode encode --tag-width 1 --length-width 1 --tag-hex ff`,
		Run: re.run,
	}

	re.tag.addFlags(cmd)
	cmd.Flags().StringVarP(&re.valueHex, "value-hex", "x", "", "value as hex bytes")
	cmd.Flags().StringVarP(&re.valueText, "value", "v", "", "value as literal text")
	cmd.Flags().StringVar(&re.sep, "sep", "", "separator placed between encoded bytes")
	cmd.MarkFlagsMutuallyExclusive("value-hex", "value")
	cmd.MarkFlagsMutuallyExclusive("tag", "tag-hex")
	return cmd
}

func (re *RecordEncoder) String() string {
	return "encode"
}

func (re *RecordEncoder) run(cmd *cobra.Command, _ []string) {
	if err := re.encode(cmd.OutOrStdout()); err != nil {
		log.Fatal(re, "Unable to encode record", "err", err)
	}
}

func (re *RecordEncoder) encode(out io.Writer) error {
	d, err := re.opts.Dialect()
	if err != nil {
		return err
	}

	node := enc.NewNode(d)
	if err = re.tag.apply(node); err != nil {
		return err
	}

	if re.valueHex != "" {
		err = node.SetValueHex(re.valueHex)
	} else {
		err = node.SetValue([]byte(re.valueText))
	}
	if err != nil {
		return err
	}

	log.Debug(re, "Encoded record", "node", node, "dialect", d)
	_, err = fmt.Fprintln(out, node.Hex(re.sep))
	return err
}
