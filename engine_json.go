package graymatter

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// JSONEngine decodes JSON front matter. Numbers decode as
// [json.Number] so integer literals are not flattened to float64.
type JSONEngine struct{}

// Parse implements [Engine].
func (JSONEngine) Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Value{}, errors.Wrap(err, "unmarshaling json front matter")
	}
	if dec.More() {
		return Value{}, errors.New("trailing data after json front matter")
	}
	return NewValue(v), nil
}

// Marshal implements [Encoder].
func (JSONEngine) Marshal(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling json front matter")
	}
	return append(out, '\n'), nil
}
