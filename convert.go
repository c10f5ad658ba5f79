package jsonsyntax

import "fmt"

// Unexpected reports that a conversion found a value of the wrong Kind.
type Unexpected struct {
	Expected Kind
	Found    Kind
}

func (e Unexpected) Error() string {
	return "expected " + e.Expected.String() + ", found " + e.Found.String()
}

// TryIntoNumberOutOfBounds reports that a Number's lexical form is
// syntactically valid JSON but does not fit the requested target type
// (e.g. "1e400" into a float64, or "3.5" into an int64).
type TryIntoNumberOutOfBounds struct {
	Target string
}

func (e TryIntoNumberOutOfBounds) Error() string {
	return "number out of bounds for " + e.Target
}

// MappedError pairs a conversion error with the CodeMap offset of the
// fragment that produced it, so callers can report a byte span instead of
// just a bare message. It wraps ErrUnexpectedKind or ErrOutOfBounds
// depending on which concrete error it carries, plus the concrete error
// itself, both reachable via errors.As/errors.Is.
type MappedError struct {
	Offset int
	Err    error
}

func (e *MappedError) Error() string {
	return fmt.Sprintf("at offset %d: %v", e.Offset, e.Err)
}

func (e *MappedError) Unwrap() []error {
	switch e.Err.(type) {
	case TryIntoNumberOutOfBounds:
		return []error{ErrOutOfBounds, e.Err}
	default:
		return []error{ErrUnexpectedKind, e.Err}
	}
}

func mappedUnexpected(offset int, expected, found Kind) error {
	return &MappedError{Offset: offset, Err: Unexpected{Expected: expected, Found: found}}
}

// IterMappedArray returns every item of an array Value together with its
// CodeMap offset, given the offset of the array fragment itself. Mirrors
// Object.IterMapped for arrays: an array entry's items start immediately
// after it, and each item's own Volume tells us where the next one begins.
func IterMappedArray(items []Value, cm *CodeMap, offset int) []Mapped[*Value] {
	out := make([]Mapped[*Value], 0, len(items))
	pos := offset + 1
	for i := range items {
		out = append(out, Mapped[*Value]{Offset: pos, Value: &items[i]})
		pos += cm.At(pos).Volume
	}
	return out
}

// ExpectNull reports a *MappedError, located at offset, if v is not null.
func ExpectNull(v *Value, offset int) error {
	if v.kind != KindNull {
		return mappedUnexpected(offset, KindNull, v.kind)
	}
	return nil
}

// ExpectBool extracts a bool from v, or a *MappedError located at offset.
func ExpectBool(v *Value, offset int) (bool, error) {
	if v.kind != KindBoolean {
		return false, mappedUnexpected(offset, KindBoolean, v.kind)
	}
	return v.boolean, nil
}

// ExpectString extracts a string from v, or a *MappedError located at
// offset.
func ExpectString(v *Value, offset int) (string, error) {
	if v.kind != KindString {
		return "", mappedUnexpected(offset, KindString, v.kind)
	}
	return v.str.String(), nil
}

// ExpectArray extracts the item slice from v, or a *MappedError located at
// offset. The returned slice aliases v's storage.
func ExpectArray(v *Value, offset int) ([]Value, error) {
	if v.kind != KindArray {
		return nil, mappedUnexpected(offset, KindArray, v.kind)
	}
	return v.array, nil
}

// ExpectObject extracts the *Object from v, or a *MappedError located at
// offset.
func ExpectObject(v *Value, offset int) (*Object, error) {
	if v.kind != KindObject {
		return nil, mappedUnexpected(offset, KindObject, v.kind)
	}
	return v.object, nil
}

// ExpectInt64 extracts an int64 from v: it must be a Number whose lexical
// form has no fractional or exponent part and fits in 64 bits.
func ExpectInt64(v *Value, offset int) (int64, error) {
	if v.kind != KindNumber {
		return 0, mappedUnexpected(offset, KindNumber, v.kind)
	}
	n, err := v.number.Int64()
	if err != nil {
		return 0, &MappedError{Offset: offset, Err: TryIntoNumberOutOfBounds{Target: "int64"}}
	}
	return n, nil
}

// ExpectUint64 extracts a uint64 from v, analogous to ExpectInt64.
func ExpectUint64(v *Value, offset int) (uint64, error) {
	if v.kind != KindNumber {
		return 0, mappedUnexpected(offset, KindNumber, v.kind)
	}
	n, err := v.number.Uint64()
	if err != nil {
		return 0, &MappedError{Offset: offset, Err: TryIntoNumberOutOfBounds{Target: "uint64"}}
	}
	return n, nil
}

// ExpectFloat64 extracts a float64 from v, possibly losing precision for
// values a float64 cannot represent exactly. It fails on the wrong Kind, and
// with TryIntoNumberOutOfBounds for a magnitude beyond the float64 range
// (e.g. "1e400").
func ExpectFloat64(v *Value, offset int) (float64, error) {
	if v.kind != KindNumber {
		return 0, mappedUnexpected(offset, KindNumber, v.kind)
	}
	f, err := v.number.Float64()
	if err != nil {
		return 0, &MappedError{Offset: offset, Err: TryIntoNumberOutOfBounds{Target: "float64"}}
	}
	return f, nil
}

// ConvertArray converts every item of an array Value with conv, threading
// each item's own CodeMap offset through so conv's own errors stay located.
func ConvertArray[T any](v *Value, cm *CodeMap, offset int, conv func(*Value, *CodeMap, int) (T, error)) ([]T, error) {
	items, err := ExpectArray(v, offset)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, m := range IterMappedArray(items, cm, offset) {
		r, err := conv(m.Value, cm, m.Offset)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ConvertObject converts every entry value of an object Value with conv,
// keyed by the entry's own key, threading each value's CodeMap offset
// through so conv's own errors stay located.
func ConvertObject[T any](v *Value, cm *CodeMap, offset int, conv func(*Value, *CodeMap, int) (T, error)) (map[string]T, error) {
	o, err := ExpectObject(v, offset)
	if err != nil {
		return nil, err
	}
	out := make(map[string]T, o.Len())
	for _, m := range o.IterMapped(cm, offset) {
		r, err := conv(&m.Entry.Value, cm, m.ValueOffset)
		if err != nil {
			return nil, err
		}
		out[m.Entry.Key.String()] = r
	}
	return out, nil
}
