package graymatter

import (
	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// TOMLEngine decodes TOML front matter. Integer literals decode to
// int64 and float literals to float64, so numeric fidelity survives a
// later typed decode.
type TOMLEngine struct{}

// Parse implements [Engine].
func (TOMLEngine) Parse(text string) (Value, error) {
	var v any
	if err := toml.Unmarshal([]byte(text), &v); err != nil {
		return Value{}, errors.Wrap(err, "unmarshaling toml front matter")
	}
	return NewValue(v), nil
}

// Marshal implements [Encoder].
func (TOMLEngine) Marshal(v any) ([]byte, error) {
	out, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml front matter")
	}
	return out, nil
}
