package toolutils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	enc "github.com/named-data/tlvnode/std/encoding"
	"github.com/named-data/tlvnode/std/utils/toolutils"
	"github.com/stretchr/testify/require"
)

type dialectConfig struct {
	Dialect *enc.Dialect `json:"dialect"`
}

func TestParseYamlDialect(t *testing.T) {
	cfg := dialectConfig{Dialect: &enc.Dialect{}}
	*cfg.Dialect = enc.DefaultDialect

	err := toolutils.ParseYaml(&cfg, []byte(`
dialect:
  tag_width: 1
  length_width: 4
  byte_order: little
`))
	require.NoError(t, err)
	require.Equal(t, enc.Dialect{TagWidth: 1, LengthWidth: 4, ByteOrder: enc.LittleEndian}, *cfg.Dialect)

	// omitted fields keep their defaults
	*cfg.Dialect = enc.DefaultDialect
	require.NoError(t, toolutils.ParseYaml(&cfg, []byte("dialect:\n  tag_width: 3\n")))
	require.Equal(t, enc.Dialect{TagWidth: 3, LengthWidth: 2, ByteOrder: enc.BigEndian}, *cfg.Dialect)

	require.Error(t, toolutils.ParseYaml(&cfg, []byte("dialect:\n  byte_order: sideways\n")))
	require.Error(t, toolutils.ParseYaml(&cfg, []byte("dialect:\n  tag_bits: 3\n")))
}

func TestReadYaml(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dialect.yml")
	require.NoError(t, os.WriteFile(file, []byte("dialect:\n  length_width: 1\n"), 0o644))

	cfg := dialectConfig{Dialect: &enc.Dialect{TagWidth: 2, LengthWidth: 2}}
	require.NoError(t, toolutils.ReadYaml(&cfg, file))
	require.Equal(t, 1, cfg.Dialect.LengthWidth)

	require.Error(t, toolutils.ReadYaml(&cfg, filepath.Join(dir, "missing.yml")))
}

func TestWriteYaml(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, toolutils.WriteYaml(out, dialectConfig{Dialect: &enc.DefaultDialect}))
	require.Contains(t, out.String(), "tag_width: 2")
	require.Contains(t, out.String(), "length_width: 2")
	require.Contains(t, out.String(), "byte_order: big")

	cfg := dialectConfig{Dialect: &enc.Dialect{}}
	require.NoError(t, toolutils.ParseYaml(&cfg, out.Bytes()))
	require.Equal(t, enc.DefaultDialect, *cfg.Dialect)
}

func TestStatusPrinter(t *testing.T) {
	out := &bytes.Buffer{}
	p := toolutils.StatusPrinter{File: out, Padding: 8}
	p.Print("tag", "0001")
	p.Print("verylongkey", 3)
	require.Equal(t, "     tag=0001\nverylongkey=3\n", out.String())
}
