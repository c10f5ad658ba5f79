// Package jsonvalue converts between jsonsyntax.Value and Go's native "any"
// tree (the shape encoding/json itself decodes into). It is the named
// external collaborator spec.md §1 calls out as "conversion to or from a
// foreign JSON value type": the core package never imports this one, and
// this package only ever talks to the core through its public
// construction/traversal surface.
//
// Numbers round-trip through jsonsyntax.NumberBuf's lexical form on the way
// in (ToAny decodes to float64, matching encoding/json's own untyped
// decoding), but FromAny re-encodes a Go number back into a fresh
// NumberBuf, so a round trip through "any" is lossy for magnitudes a
// float64 can't represent exactly -- this is the same lossiness
// encoding/json itself has when unmarshalling into interface{}, and is not
// something this package can avoid without inventing its own numeric type.
package jsonvalue

import (
	"fmt"

	jsonsyntax "github.com/mcvoid/jsonsyntax"
)

// ToAny converts v into Go's untyped JSON shape: nil, bool, float64,
// string, []any, or map[string]any. Object conversion is lossy in two
// ways jsonsyntax.Value is not: duplicate keys collapse to their last
// occurrence (map[string]any has no concept of duplicates) and entry order
// is not preserved (Go maps are unordered). Callers that need either
// property should traverse the Object directly instead of going through
// ToAny.
func ToAny(v *jsonsyntax.Value) (any, error) {
	switch v.Kind() {
	case jsonsyntax.KindNull:
		return nil, nil
	case jsonsyntax.KindBoolean:
		b, _ := v.AsBoolean()
		return b, nil
	case jsonsyntax.KindNumber:
		n, _ := v.AsNumber()
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("jsonvalue: number %q: %w", n.String(), err)
		}
		return f, nil
	case jsonsyntax.KindString:
		s, _ := v.AsString()
		return s.String(), nil
	case jsonsyntax.KindArray:
		items, _ := v.AsArray()
		out := make([]any, len(items))
		for i := range items {
			conv, err := ToAny(&items[i])
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case jsonsyntax.KindObject:
		o, _ := v.AsObject()
		entries := o.Entries()
		out := make(map[string]any, o.Len())
		for i := range entries {
			e := &entries[i]
			conv, err := ToAny(&e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key.String()] = conv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonvalue: unknown kind %v", v.Kind())
	}
}

// FromAny builds a jsonsyntax.Value from Go's untyped JSON shape, the
// inverse of ToAny. Supported inputs are nil, bool, string, int, int64 and
// uint64 (preserved exactly via NewNumberFromInt64/NewNumberFromUint64 so
// round-tripping an integer doesn't pick up a spurious decimal point),
// float64, []any, and map[string]any. Any other input type, including the
// other numeric types (int32, uint, float32, ...) and typed slices or maps,
// returns an error.
func FromAny(x any) (jsonsyntax.Value, error) {
	switch t := x.(type) {
	case nil:
		return jsonsyntax.Null, nil
	case bool:
		return jsonsyntax.NewBoolean(t), nil
	case string:
		return jsonsyntax.NewStringValue(jsonsyntax.NewString(t)), nil
	case int:
		return jsonsyntax.NewNumberValue(jsonsyntax.NewNumberFromInt64(int64(t))), nil
	case int64:
		return jsonsyntax.NewNumberValue(jsonsyntax.NewNumberFromInt64(t)), nil
	case uint64:
		return jsonsyntax.NewNumberValue(jsonsyntax.NewNumberFromUint64(t)), nil
	case float64:
		n, err := jsonsyntax.NewNumberFromFloat64(t)
		if err != nil {
			return jsonsyntax.Value{}, fmt.Errorf("jsonvalue: %w", err)
		}
		return jsonsyntax.NewNumberValue(n), nil
	case []any:
		items := make([]jsonsyntax.Value, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return jsonsyntax.Value{}, err
			}
			items[i] = v
		}
		return jsonsyntax.NewArrayValue(items), nil
	case map[string]any:
		o := jsonsyntax.NewObject()
		for k, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return jsonsyntax.Value{}, err
			}
			o.Push(jsonsyntax.NewKey(k), v)
		}
		return jsonsyntax.NewObjectValue(o), nil
	default:
		return jsonsyntax.Value{}, fmt.Errorf("jsonvalue: unsupported type %T", x)
	}
}
