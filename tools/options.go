package tools

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	enc "github.com/named-data/tlvnode/std/encoding"
	"github.com/named-data/tlvnode/std/log"
	"github.com/named-data/tlvnode/std/utils/toolutils"
	"github.com/spf13/cobra"
)

// Options holds the flags shared by all record commands.
type Options struct {
	ConfigFile  string
	TagWidth    int
	LengthWidth int
	ByteOrder   string
	LogLevel    string

	// stdin is used when a record argument is "-".
	stdin io.Reader
}

// DialectConfig is the layout of the YAML configuration file.
type DialectConfig struct {
	Dialect *enc.Dialect `json:"dialect"`
}

func (o *Options) String() string {
	return "tlvnode"
}

// AddFlags registers the shared flags as persistent flags of cmd.
func (o *Options) AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, "config", "c", "", "YAML file with a dialect section")
	flags.IntVar(&o.TagWidth, "tag-width", 0, "tag field width in bytes (default 2)")
	flags.IntVar(&o.LengthWidth, "length-width", 0, "length field width in bytes (default 2)")
	flags.StringVar(&o.ByteOrder, "order", "", "byte order of integer fields: big or little (default big)")
	flags.StringVar(&o.LogLevel, "log-level", "INFO", "log level: TRACE, DEBUG, INFO, WARN, ERROR")
}

// ApplyLogLevel sets the level of the default logger.
func (o *Options) ApplyLogLevel() error {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	log.Default().SetLevel(level)
	return nil
}

// Dialect resolves the effective dialect: defaults, then the configuration
// file, then explicit flags.
func (o *Options) Dialect() (enc.Dialect, error) {
	d := enc.DefaultDialect

	if o.ConfigFile != "" {
		config := DialectConfig{Dialect: &d}
		if err := toolutils.ReadYaml(&config, o.ConfigFile); err != nil {
			return d, err
		}
		if config.Dialect != nil {
			d = *config.Dialect
		}
		log.Debug(o, "Loaded dialect", "file", o.ConfigFile, "dialect", d)
	}

	if o.TagWidth != 0 {
		d.TagWidth = o.TagWidth
	}
	if o.LengthWidth != 0 {
		d.LengthWidth = o.LengthWidth
	}
	if o.ByteOrder != "" {
		order, err := enc.ParseByteOrder(o.ByteOrder)
		if err != nil {
			return d, err
		}
		d.ByteOrder = order
	}

	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("invalid dialect: %w", err)
	}
	return d, nil
}

// recordHex returns the hex text of a record argument, reading stdin for "-".
func (o *Options) recordHex(arg string) (string, error) {
	if arg != "-" {
		return strings.TrimSpace(arg), nil
	}

	in := o.stdin
	if in == nil {
		in = os.Stdin
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("unable to read stdin: %w", err)
	}
	return strings.Join(strings.Fields(string(b)), ""), nil
}

// tagFlags selects the tag of a new record.
type tagFlags struct {
	tagInt string
	tagHex string
}

func (f *tagFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.tagInt, "tag", "t", "", "tag as an integer (decimal or 0x-prefixed)")
	cmd.Flags().StringVar(&f.tagHex, "tag-hex", "", "tag as raw hex bytes, padded or truncated to the tag width")
}

func (f *tagFlags) apply(n *enc.Node) error {
	switch {
	case f.tagInt != "":
		v, err := strconv.ParseUint(f.tagInt, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid tag %q: %w", f.tagInt, err)
		}
		return n.SetTagInt(v)
	case f.tagHex != "":
		return n.SetTagHex(f.tagHex)
	}
	return nil
}
