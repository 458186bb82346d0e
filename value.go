package graymatter

import (
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

// Value holds decoded front matter as a self-describing generic value:
// maps, sequences and scalars, as produced by an [Engine]. It can be
// converted into a caller-supplied typed shape with [Value.Decode], or
// inspected piecewise with the accessor methods.
type Value struct {
	v any
}

// NewValue wraps a generic decoded value. Engines use it to build their
// return value; callers normally receive a Value from [Matter.Parse].
func NewValue(v any) Value {
	return Value{v: v}
}

// Interface returns the underlying generic value.
func (v Value) Interface() any {
	return v.v
}

// IsNil reports whether the value holds nothing, for example the result
// of decoding an explicit null.
func (v Value) IsNil() bool {
	return v.v == nil
}

// Decode converts the value into out, which must be a pointer to the
// desired shape. Field names match keys case-insensitively; a
// `mapstructure` struct tag overrides the name. Integer and float
// values are preserved exactly into matching numeric field types.
func (v Value) Decode(out any) error {
	if v.v == nil {
		return errors.New("front matter value is empty")
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: out,
	})
	if err != nil {
		return errors.Wrap(err, "building front matter decoder")
	}
	if err := dec.Decode(v.v); err != nil {
		return errors.Wrap(err, "decoding front matter")
	}
	return nil
}

// AsString converts the value to a string.
func (v Value) AsString() (string, error) {
	return cast.ToStringE(v.v)
}

// AsInt64 converts the value to an int64.
func (v Value) AsInt64() (int64, error) {
	return cast.ToInt64E(v.v)
}

// AsFloat64 converts the value to a float64.
func (v Value) AsFloat64() (float64, error) {
	return cast.ToFloat64E(v.v)
}

// AsBool converts the value to a bool.
func (v Value) AsBool() (bool, error) {
	return cast.ToBoolE(v.v)
}

// AsSlice returns the value's elements when it holds a sequence.
func (v Value) AsSlice() ([]Value, error) {
	raw, err := cast.ToSliceE(v.v)
	if err != nil {
		return nil, errors.Wrap(err, "front matter value is not a sequence")
	}
	out := make([]Value, len(raw))
	for i, item := range raw {
		out[i] = Value{v: item}
	}
	return out, nil
}

// AsMap returns the value's entries when it holds a mapping with string
// keys.
func (v Value) AsMap() (map[string]Value, error) {
	raw, err := cast.ToStringMapE(v.v)
	if err != nil {
		return nil, errors.Wrap(err, "front matter value is not a mapping")
	}
	out := make(map[string]Value, len(raw))
	for key, item := range raw {
		out[key] = Value{v: item}
	}
	return out, nil
}

// Get looks up key in a mapping value. The second return is false when
// the value is not a mapping or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	raw, err := cast.ToStringMapE(v.v)
	if err != nil {
		return Value{}, false
	}
	item, ok := raw[key]
	if !ok {
		return Value{}, false
	}
	return Value{v: item}, true
}

// Index returns element i of a sequence value. The second return is
// false when the value is not a sequence or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	raw, err := cast.ToSliceE(v.v)
	if err != nil || i < 0 || i >= len(raw) {
		return Value{}, false
	}
	return Value{v: raw[i]}, true
}
