package jsonsyntax

// Value is a JSON value: a tagged sum over the six JSON kinds. The zero
// Value is JSON null.
type Value struct {
	kind    Kind
	boolean bool
	number  NumberBuf
	str     String
	array   []Value
	object  *Object
}

// Null is the JSON null value.
var Null = Value{kind: KindNull}

// NewBoolean constructs a boolean Value.
func NewBoolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// NewNumberValue constructs a Value from a NumberBuf.
func NewNumberValue(n NumberBuf) Value {
	return Value{kind: KindNumber, number: n}
}

// NewStringValue constructs a Value from a String.
func NewStringValue(s String) Value {
	return Value{kind: KindString, str: s}
}

// NewArrayValue constructs an array Value owning items. items is taken by
// reference, not copied.
func NewArrayValue(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, array: items}
}

// NewObjectValue constructs an object Value owning o.
func NewObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, object: o}
}

// Kind reports which of the six JSON kinds v holds.
func (v *Value) Kind() Kind {
	return v.kind
}

// IsNull, IsBoolean, IsNumber, IsString, IsArray, IsObject are convenience
// predicates over Kind().
func (v *Value) IsNull() bool    { return v.kind == KindNull }
func (v *Value) IsBoolean() bool { return v.kind == KindBoolean }
func (v *Value) IsNumber() bool  { return v.kind == KindNumber }
func (v *Value) IsString() bool  { return v.kind == KindString }
func (v *Value) IsArray() bool   { return v.kind == KindArray }
func (v *Value) IsObject() bool  { return v.kind == KindObject }

// AsBoolean returns the boolean payload and true if v is a boolean.
func (v *Value) AsBoolean() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// AsNumber returns the number payload and true if v is a number.
func (v *Value) AsNumber() (NumberBuf, bool) {
	return v.number, v.kind == KindNumber
}

// AsString returns the string payload and true if v is a string.
func (v *Value) AsString() (String, bool) {
	return v.str, v.kind == KindString
}

// AsArray returns the array payload and true if v is an array. The
// returned slice aliases v's storage; mutating it mutates v.
func (v *Value) AsArray() ([]Value, bool) {
	return v.array, v.kind == KindArray
}

// AsObject returns the object payload and true if v is an object. The
// returned pointer aliases v's storage; mutating through it mutates v.
func (v *Value) AsObject() (*Object, bool) {
	return v.object, v.kind == KindObject
}

// ForceAsArray returns v's items if v is an array (aliasing v's storage),
// or else a new one-element slice holding a shallow copy of v. This lets
// callers treat "a value or a list of that value" uniformly without a type
// switch.
func (v *Value) ForceAsArray() []Value {
	if v.kind == KindArray {
		return v.array
	}
	return []Value{*v}
}

// Take replaces v with null and returns its previous value.
func (v *Value) Take() Value {
	old := *v
	*v = Null
	return old
}

// FragmentKind identifies which syntactic fragment a FragmentRef refers
// to: a value, an object entry (key+value pair, taken together), or an
// object key.
type FragmentKind uint8

const (
	FragmentIsValue FragmentKind = iota
	FragmentIsEntry
	FragmentIsKey
)

// FragmentRef is a reference to one syntactic fragment of a value tree, as
// produced by Value.Traverse/Walk/GetFragment in agreement with CodeMap
// ordering.
type FragmentRef struct {
	Kind  FragmentKind
	Value *Value
	Entry *Entry
	Key   *Key
}

// TraversedFragment pairs a code-map offset with the fragment found there.
type TraversedFragment struct {
	Offset int
	Frag   FragmentRef
}

// Traverse performs a depth-first pre-order walk of v, returning every
// fragment (value, object entry, and object key) paired with its offset in
// that order. This offset ordering is exactly the ordering of entries in
// the CodeMap produced by Parse for the same tree, so
// len(v.Traverse()) == codeMap.Len() for a freshly parsed value.
//
// Traverse walks the tree with ordinary Go recursion, not the parser's
// explicit work stack: depth is bounded by the Go call stack, not the heap.
func (v *Value) Traverse() []TraversedFragment {
	var out []TraversedFragment
	v.walk(func(offset int, frag FragmentRef) bool {
		out = append(out, TraversedFragment{Offset: offset, Frag: frag})
		return true
	})
	return out
}

// Walk performs the same depth-first pre-order traversal as Traverse, but
// calls fn for each fragment instead of building a slice. Walk stops early
// if fn returns false.
func (v *Value) Walk(fn func(offset int, frag FragmentRef) bool) {
	v.walk(fn)
}

// walk returns the number of fragments visited (i.e. the volume of v).
func (v *Value) walk(fn func(offset int, frag FragmentRef) bool) int {
	n, _ := v.walkFrom(0, fn)
	return n
}

// walkFrom visits v and its descendants depth-first, pre-order, calling fn
// for each fragment. It returns the number of fragments visited and whether
// the caller should keep visiting later siblings: once fn returns false,
// that signal propagates all the way back up, so no further fragment
// anywhere in the tree is visited.
func (v *Value) walkFrom(offset int, fn func(offset int, frag FragmentRef) bool) (int, bool) {
	if !fn(offset, FragmentRef{Kind: FragmentIsValue, Value: v}) {
		return 1, false
	}
	n := 1
	switch v.kind {
	case KindArray:
		for i := range v.array {
			sub, cont := v.array[i].walkFrom(offset+n, fn)
			n += sub
			if !cont {
				return n, false
			}
		}
	case KindObject:
		for i := range v.object.entries {
			sub, cont := v.object.entries[i].walkFrom(offset+n, fn)
			n += sub
			if !cont {
				return n, false
			}
		}
	}
	return n, true
}

// walkFrom for an Entry: emits the entry fragment, then the key fragment,
// then the value's own sub-traversal, matching the parser's code-map
// emission order (spec.md §4.1).
func (e *Entry) walkFrom(offset int, fn func(offset int, frag FragmentRef) bool) (int, bool) {
	if !fn(offset, FragmentRef{Kind: FragmentIsEntry, Entry: e}) {
		return 1, false
	}
	if !fn(offset+1, FragmentRef{Kind: FragmentIsKey, Key: &e.Key}) {
		return 2, false
	}
	sub, cont := e.Value.walkFrom(offset+2, fn)
	return 2 + sub, cont
}

// GetFragment finds the offset-th fragment of v by descent, in the same
// ordering Traverse/Walk use. It runs in O(offset) time. It returns an
// error if offset is out of range.
func (v *Value) GetFragment(offset int) (FragmentRef, error) {
	frag, _, ok := v.getFragment(offset)
	if !ok {
		return FragmentRef{}, &SyntaxError{Op: "GetFragment", Msg: "offset out of range"}
	}
	return frag, nil
}

// getFragment returns (fragment, _, true) if found, or (_, remaining, false)
// with the index still to search among later siblings, mirroring the
// Result<FragmentRef, usize> shape of the original Rust implementation
// (object/mod.rs's get_fragment).
func (v *Value) getFragment(index int) (FragmentRef, int, bool) {
	if index == 0 {
		return FragmentRef{Kind: FragmentIsValue, Value: v}, 0, true
	}
	index--
	switch v.kind {
	case KindArray:
		for i := range v.array {
			if frag, rem, ok := v.array[i].getFragment(index); ok {
				return frag, 0, true
			} else {
				index = rem
			}
		}
	case KindObject:
		for i := range v.object.entries {
			if frag, rem, ok := v.object.entries[i].getFragment(index); ok {
				return frag, 0, true
			} else {
				index = rem
			}
		}
	}
	return FragmentRef{}, index, false
}

func (e *Entry) getFragment(index int) (FragmentRef, int, bool) {
	switch index {
	case 0:
		return FragmentRef{Kind: FragmentIsEntry, Entry: e}, 0, true
	case 1:
		return FragmentRef{Kind: FragmentIsKey, Key: &e.Key}, 0, true
	default:
		return e.Value.getFragment(index - 2)
	}
}

// Equal reports whether v and other are structurally equal, respecting
// object entry order (use UnorderedEqual to ignore order).
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number.String() == other.number.String()
	case KindString:
		return v.str.Equal(other.str)
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i := range v.array {
			if !v.array[i].Equal(&other.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.object.Equal(other.object)
	}
	return false
}

// Clone returns a deep copy of v.
func (v *Value) Clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.array))
		for i := range v.array {
			items[i] = v.array[i].Clone()
		}
		return Value{kind: KindArray, array: items}
	case KindObject:
		return NewObjectValue(v.object.Clone())
	default:
		return *v
	}
}
