// Package jsonbuild is a fluent builder for jsonsyntax.Value trees. It
// replaces the source's json! literal macro (spec.md §1, "the macro
// facility that builds values from a literal") -- Go has no macros, so the
// idiomatic replacement is a small chainable constructor API instead of a
// literal-like syntax, grounded on the same contract the macro served:
// build a Value (with nested arrays/objects) from a sequence of Go
// expressions without hand-assembling Object/Entry/Value plumbing at every
// call site.
package jsonbuild

import jsonsyntax "github.com/mcvoid/jsonsyntax"

// Array builds an array Value from items, each itself built by a nested
// jsonbuild call or a bare scalar constructor (Null, Bool, String, Int,
// ...).
func Array(items ...jsonsyntax.Value) jsonsyntax.Value {
	out := make([]jsonsyntax.Value, len(items))
	copy(out, items)
	return jsonsyntax.NewArrayValue(out)
}

// Null returns the JSON null Value.
func Null() jsonsyntax.Value {
	return jsonsyntax.Null
}

// Bool returns a boolean Value.
func Bool(b bool) jsonsyntax.Value {
	return jsonsyntax.NewBoolean(b)
}

// String returns a string Value.
func String(s string) jsonsyntax.Value {
	return jsonsyntax.NewStringValue(jsonsyntax.NewString(s))
}

// Int returns a number Value from an int64, with no fractional part.
func Int(n int64) jsonsyntax.Value {
	return jsonsyntax.NewNumberValue(jsonsyntax.NewNumberFromInt64(n))
}

// Uint returns a number Value from a uint64, with no fractional part.
func Uint(n uint64) jsonsyntax.Value {
	return jsonsyntax.NewNumberValue(jsonsyntax.NewNumberFromUint64(n))
}

// Float returns a number Value from a float64. It panics if v is NaN or
// infinite, since neither has a JSON representation -- mirroring the macro
// this package replaces, which only ever accepted literals that could be
// represented in the first place.
func Float(v float64) jsonsyntax.Value {
	n, err := jsonsyntax.NewNumberFromFloat64(v)
	if err != nil {
		panic(err)
	}
	return jsonsyntax.NewNumberValue(n)
}

// Number returns a number Value from its exact lexical form, e.g.
// Number("1.0") or Number("1e400") for a literal no float64 could hold.
// It panics if literal does not satisfy the JSON number grammar.
func Number(literal string) jsonsyntax.Value {
	n, err := jsonsyntax.NewNumber(literal)
	if err != nil {
		panic(err)
	}
	return jsonsyntax.NewNumberValue(n)
}

// ObjectBuilder accumulates (key, value) pairs in the order they are
// added, then yields an object Value. Unlike Object (the one-shot
// variadic constructor below), ObjectBuilder lets an object be assembled
// across several statements -- useful when entries are conditional or
// computed in a loop, which a literal-like macro call cannot express.
type ObjectBuilder struct {
	o *jsonsyntax.Object
}

// NewObjectBuilder returns an empty ObjectBuilder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{o: jsonsyntax.NewObject()}
}

// Set appends (key, value) to the object under construction, preserving
// duplicates exactly as Object.Push does -- the builder does not
// deduplicate or canonicalize on insert, matching spec.md §1's Non-goals.
func (b *ObjectBuilder) Set(key string, value jsonsyntax.Value) *ObjectBuilder {
	b.o.Push(jsonsyntax.NewKey(key), value)
	return b
}

// Build returns the assembled object Value.
func (b *ObjectBuilder) Build() jsonsyntax.Value {
	return jsonsyntax.NewObjectValue(b.o)
}

// Field is one (key, value) pair passed to Object.
type Field struct {
	Key   string
	Value jsonsyntax.Value
}

// F constructs a Field, shortening call sites that build an object
// in one expression: jsonbuild.Object(jsonbuild.F("a", jsonbuild.Int(1))).
func F(key string, value jsonsyntax.Value) Field {
	return Field{Key: key, Value: value}
}

// Object builds an object Value from fields in order, in one expression --
// the direct replacement for the macro's `{ "key": value, ... }` literal
// syntax.
func Object(fields ...Field) jsonsyntax.Value {
	b := NewObjectBuilder()
	for _, f := range fields {
		b.Set(f.Key, f.Value)
	}
	return b.Build()
}
