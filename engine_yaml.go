package graymatter

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// YAMLEngine decodes YAML front matter.
type YAMLEngine struct{}

// Parse implements [Engine].
func (YAMLEngine) Parse(text string) (Value, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return Value{}, errors.Wrap(err, "unmarshaling yaml front matter")
	}
	return NewValue(v), nil
}

// Marshal implements [Encoder].
func (YAMLEngine) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml front matter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "closing yaml encoder")
	}
	return buf.Bytes(), nil
}
