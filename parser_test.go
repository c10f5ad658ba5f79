package jsonsyntax

import (
	"errors"
	"strings"
	"testing"
)

func TestParseScalarLiterals(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"null", KindNull},
		{"true", KindBoolean},
		{"false", KindBoolean},
		{"0", KindNumber},
		{"-1.5e10", KindNumber},
		{`"hello"`, KindString},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, _, err := ParseString(tt.in, Options{})
			if err != nil {
				t.Fatalf("ParseString(%q): %v", tt.in, err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.kind)
			}
		})
	}
}

func TestParseSkipsSurroundingWhitespace(t *testing.T) {
	v, _, err := ParseString("  \n\t 42 \r\n ", Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	n, _ := v.AsNumber()
	if n.String() != "42" {
		t.Errorf("AsNumber() = %q, want %q", n.String(), "42")
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, _, err := ParseString(`1 2`, Options{})
	if err == nil {
		t.Fatal("expected error for trailing data after a complete value")
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, _, err := ParseString("", Options{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestParseRejectsTrailingCommaInArray(t *testing.T) {
	_, _, err := ParseString(`[1,2,]`, Options{})
	if err == nil {
		t.Fatal("expected error for trailing comma in array")
	}
}

func TestParseRejectsTrailingCommaInObject(t *testing.T) {
	_, _, err := ParseString(`{"a":1,}`, Options{})
	if err == nil {
		t.Fatal("expected error for trailing comma in object")
	}
}

func TestParseNestedStructure(t *testing.T) {
	v, _, err := ParseString(`{"a":[1,2,{"b":true}],"c":null}`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	o, ok := v.AsObject()
	if !ok {
		t.Fatal("expected object")
	}
	aVals := o.Get("a")
	if len(aVals) != 1 {
		t.Fatalf("Get(a) = %v", aVals)
	}
	items, ok := aVals[0].AsArray()
	if !ok || len(items) != 3 {
		t.Fatalf("expected a 3-element array, got %v", items)
	}
	inner, ok := items[2].AsObject()
	if !ok {
		t.Fatal("expected nested object as third array element")
	}
	bVals := inner.Get("b")
	if len(bVals) != 1 {
		t.Fatal("expected nested object to contain key b")
	}
	b, _ := bVals[0].AsBoolean()
	if !b {
		t.Error("expected b to be true")
	}
}

func TestParsePreservesNumberLexicalForm(t *testing.T) {
	for _, lit := range []string{"1", "1.0", "1e0", "1.00", "-0", "0.10"} {
		v, _, err := ParseString(lit, Options{})
		if err != nil {
			t.Fatalf("ParseString(%q): %v", lit, err)
		}
		n, _ := v.AsNumber()
		if n.String() != lit {
			t.Errorf("ParseString(%q).AsNumber() = %q, want %q", lit, n.String(), lit)
		}
	}
}

func TestParseDuplicateKeysArePreserved(t *testing.T) {
	v, _, err := ParseString(`{"a":1,"a":2}`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	o, _ := v.AsObject()
	if o.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (both duplicates kept)", o.Len())
	}
	vals := o.Get("a")
	if len(vals) != 2 {
		t.Fatalf("Get(a) returned %d values, want 2", len(vals))
	}
}

func TestParseStringEscapes(t *testing.T) {
	v, _, err := ParseString(`"a\tb\nc\"d\\e"`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	s, _ := v.AsString()
	want := "a\tb\nc\"d\\e"
	if s.String() != want {
		t.Errorf("AsString() = %q, want %q", s.String(), want)
	}
}

func TestParseUnicodeEscapeAndSurrogatePair(t *testing.T) {
	v, _, err := ParseString(`"\u00e9\ud83d\ude00"`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	s, _ := v.AsString()
	want := "é\U0001F600"
	if s.String() != want {
		t.Errorf("AsString() = %q, want %q", s.String(), want)
	}
}

func TestParseStrictRejectsUnescapedControlCharacter(t *testing.T) {
	_, _, err := ParseString("\"a\x01b\"", Options{})
	if err == nil {
		t.Fatal("expected error for unescaped control character in string")
	}
}

func TestParseStrictRejectsMissingLowSurrogate(t *testing.T) {
	_, _, err := ParseString(`"\ud800"`, Options{})
	if err == nil {
		t.Fatal("expected error for unpaired high surrogate")
	}
	var missing *MissingLowSurrogateError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingLowSurrogateError, got %T: %v", err, err)
	}
}

func TestParseStrictRejectsInvalidLowSurrogate(t *testing.T) {
	_, _, err := ParseString(`"\ud800\u0041"`, Options{})
	if err == nil {
		t.Fatal("expected error for high surrogate followed by a \\u escape that is not a low surrogate")
	}
	var invalid *InvalidLowSurrogateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidLowSurrogateError, got %T: %v", err, err)
	}
}

func TestParseFlexibleAcceptsTruncatedSurrogatePair(t *testing.T) {
	v, _, err := ParseString(`"\ud800"`, Options{AcceptTruncatedSurrogatePair: true})
	if err != nil {
		t.Fatalf("ParseString with AcceptTruncatedSurrogatePair: %v", err)
	}
	s, _ := v.AsString()
	if s.String() != string(replacementChar) {
		t.Errorf("AsString() = %q, want U+FFFD", s.String())
	}
}

func TestParseFlexibleAcceptsHighSurrogateBeforePlainChar(t *testing.T) {
	// A high surrogate followed by a plain (non-escaped) character: flexible
	// mode degrades the unpaired high surrogate to U+FFFD instead of failing.
	v, _, err := ParseString(`"\ud800A"`, Options{AcceptTruncatedSurrogatePair: true})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	s, _ := v.AsString()
	want := string(replacementChar) + "A"
	if s.String() != want {
		t.Errorf("AsString() = %q, want %q", s.String(), want)
	}
}

func TestParseReader(t *testing.T) {
	v, _, err := ParseReader(strings.NewReader(`[1,2,3]`), Options{})
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	items, _ := v.AsArray()
	if len(items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(items))
	}
}

func TestParseDeepNestingDoesNotRecurse(t *testing.T) {
	const depth = 5000
	in := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	v, _, err := ParseString(in, Options{})
	if err != nil {
		t.Fatalf("ParseString deep nesting: %v", err)
	}
	count := 0
	cur := &v
	for {
		items, ok := cur.AsArray()
		if !ok {
			break
		}
		count++
		if len(items) == 0 {
			break
		}
		cur = &items[0]
	}
	if count != depth {
		t.Errorf("nesting depth = %d, want %d", count, depth)
	}
}

func TestParseEmptyContainers(t *testing.T) {
	v, _, err := ParseString(`[]`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	items, _ := v.AsArray()
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0", len(items))
	}

	v2, _, err := ParseString(`{}`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	o, _ := v2.AsObject()
	if o.Len() != 0 {
		t.Errorf("Len() = %d, want 0", o.Len())
	}
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	_, _, err := Parse([]byte{'"', 0xff, '"'}, Options{})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 in a string literal")
	}
	var invalid *InvalidUTF8Error
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidUTF8Error, got %T: %v", err, err)
	}
}
