package tools

import (
	"fmt"
	"io"

	enc "github.com/named-data/tlvnode/std/encoding"
	"github.com/named-data/tlvnode/std/log"
	"github.com/named-data/tlvnode/std/utils/toolutils"
	"github.com/spf13/cobra"
)

type RecordDecoder struct {
	opts *Options
	sep  string
}

func CmdDecode(opts *Options) *cobra.Command {
	rd := RecordDecoder{opts: opts}

	cmd := &cobra.Command{
		GroupID: "records",
		Use:     "decode RECORD-HEX",
		Short:   "Decode and print a single TLV record",
		Long: `Decode a single TLV record given as hex and print its fields.
The input must hold exactly one record: a truncated header or a length
field that does not match the trailing bytes is rejected.
Use "-" to read the hex record from stdin.`,
		Args: cobra.ExactArgs(1),
		Example: `  tlvnode decode 00010003010203
  echo 0001 0003 010203 | tlvnode decode -`,
		Run: rd.run,
	}

	cmd.Flags().StringVar(&rd.sep, "sep", "", "separator placed between printed bytes")
	return cmd
}

func (rd *RecordDecoder) String() string {
	return "decode"
}

func (rd *RecordDecoder) run(cmd *cobra.Command, args []string) {
	if err := rd.decode(cmd.OutOrStdout(), args[0]); err != nil {
		log.Fatal(rd, "Unable to decode record", "err", err)
	}
}

func (rd *RecordDecoder) decode(out io.Writer, arg string) error {
	d, err := rd.opts.Dialect()
	if err != nil {
		return err
	}

	text, err := rd.opts.recordHex(arg)
	if err != nil {
		return err
	}

	node := enc.NewNode(d)
	if err = node.DecodeHex(text); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	p := toolutils.StatusPrinter{File: out, Padding: 12}
	p.Print("dialect", d)
	p.Print("tag", enc.EncodeHex(node.Tag(), rd.sep))
	p.Print("length", node.Length())
	p.Print("value", enc.EncodeHex(node.Value(), rd.sep))
	p.Print("node-length", node.NodeLength())
	p.Print("hash", fmt.Sprintf("%016x", node.Hash()))
	return nil
}
