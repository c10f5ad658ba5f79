package jsonsyntax

import "testing"

func TestStringInlining(t *testing.T) {
	short := NewString("short")
	if !short.IsInline() {
		t.Error("expected short string to be stored inline")
	}
	if short.String() != "short" {
		t.Errorf("String() = %q, want %q", short.String(), "short")
	}

	long := NewString("this string is definitely longer than sixteen bytes")
	if long.IsInline() {
		t.Error("expected long string to be heap-backed")
	}
	if long.String() != "this string is definitely longer than sixteen bytes" {
		t.Errorf("String() round-trip failed for long string")
	}
}

func TestStringBoundaryLength(t *testing.T) {
	exact := NewString("0123456789abcdef") // exactly 16 bytes
	if !exact.IsInline() {
		t.Error("expected exactly-16-byte string to be inline")
	}
	over := NewString("0123456789abcdefg") // 17 bytes
	if over.IsInline() {
		t.Error("expected 17-byte string to be heap-backed")
	}
}

func TestStringEqual(t *testing.T) {
	a := NewString("hello")
	b := NewString("hello")
	c := NewString("world")
	if !a.Equal(b) {
		t.Error("expected equal strings to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected different strings to compare unequal")
	}
}

func TestKeyEqualAndAsString(t *testing.T) {
	k := NewKey("name")
	if k.String() != "name" {
		t.Errorf("Key.String() = %q, want %q", k.String(), "name")
	}
	s := k.AsString()
	if s.String() != "name" {
		t.Errorf("Key.AsString().String() = %q, want %q", s.String(), "name")
	}
	if !NewKey("a").Equal(NewKey("a")) {
		t.Error("expected equal keys to compare equal")
	}
}
