package toolutils

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// ReadYaml strictly decodes the YAML file into dest.
func ReadYaml(dest any, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to open configuration file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f, yaml.Strict())
	if err = dec.Decode(dest); err != nil {
		return fmt.Errorf("unable to parse configuration file: %w", err)
	}
	return nil
}

// ParseYaml strictly decodes YAML bytes into dest.
func ParseYaml(dest any, data []byte) error {
	if err := yaml.UnmarshalWithOptions(data, dest, yaml.Strict()); err != nil {
		return fmt.Errorf("unable to parse configuration: %w", err)
	}
	return nil
}

// WriteYaml encodes v as YAML to w.
func WriteYaml(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
