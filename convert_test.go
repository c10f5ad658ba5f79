package jsonsyntax

import (
	"errors"
	"testing"
)

func TestExpectBoolWrongKindReturnsMappedError(t *testing.T) {
	v := Null
	_, err := ExpectBool(&v, 42)
	if err == nil {
		t.Fatal("expected error for non-boolean value")
	}
	var me *MappedError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MappedError, got %T", err)
	}
	if me.Offset != 42 {
		t.Errorf("MappedError.Offset = %d, want 42", me.Offset)
	}
	if !errors.Is(err, ErrUnexpectedKind) {
		t.Error("expected errors.Is(err, ErrUnexpectedKind) to hold")
	}
}

func TestExpectStringSuccess(t *testing.T) {
	v := NewStringValue(NewString("hi"))
	s, err := ExpectString(&v, 0)
	if err != nil {
		t.Fatalf("ExpectString: %v", err)
	}
	if s != "hi" {
		t.Errorf("ExpectString = %q, want %q", s, "hi")
	}
}

func TestExpectInt64OutOfBoundsWrapsErrOutOfBounds(t *testing.T) {
	n, err := NewNumber("3.5")
	if err != nil {
		t.Fatalf("NewNumber: %v", err)
	}
	v := NewNumberValue(n)
	_, err = ExpectInt64(&v, 7)
	if err == nil {
		t.Fatal("expected error converting 3.5 to int64")
	}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Error("expected errors.Is(err, ErrOutOfBounds) to hold")
	}
}

func TestExpectFloat64AcceptsAnyNumber(t *testing.T) {
	n, err := NewNumber("3.5")
	if err != nil {
		t.Fatalf("NewNumber: %v", err)
	}
	v := NewNumberValue(n)
	f, err := ExpectFloat64(&v, 0)
	if err != nil {
		t.Fatalf("ExpectFloat64: %v", err)
	}
	if f != 3.5 {
		t.Errorf("ExpectFloat64 = %v, want 3.5", f)
	}
}

func TestConvertArrayThreadsOffsets(t *testing.T) {
	v, cm, err := ParseString(`[1,2,3]`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	var offsets []int
	out, err := ConvertArray(&v, cm, 0, func(item *Value, cm *CodeMap, offset int) (int64, error) {
		offsets = append(offsets, offset)
		return ExpectInt64(item, offset)
	})
	if err != nil {
		t.Fatalf("ConvertArray: %v", err)
	}
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Errorf("ConvertArray result = %v, want [1 2 3]", out)
	}
	if len(offsets) != 3 || offsets[0] != 1 || offsets[1] != 2 || offsets[2] != 3 {
		t.Errorf("offsets = %v, want [1 2 3]", offsets)
	}
}

func TestConvertArrayPropagatesElementError(t *testing.T) {
	v, cm, err := ParseString(`[1,"x",3]`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	_, err = ConvertArray(&v, cm, 0, func(item *Value, cm *CodeMap, offset int) (int64, error) {
		return ExpectInt64(item, offset)
	})
	if err == nil {
		t.Fatal("expected error converting a string element to int64")
	}
}

func TestConvertObjectKeyedByEntryKey(t *testing.T) {
	v, cm, err := ParseString(`{"a":1,"b":2}`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	out, err := ConvertObject(&v, cm, 0, func(item *Value, cm *CodeMap, offset int) (int64, error) {
		return ExpectInt64(item, offset)
	})
	if err != nil {
		t.Fatalf("ConvertObject: %v", err)
	}
	if out["a"] != 1 || out["b"] != 2 {
		t.Errorf("ConvertObject result = %v, want map[a:1 b:2]", out)
	}
}

func TestUnexpectedErrorMessage(t *testing.T) {
	err := Unexpected{Expected: KindString, Found: KindNumber}
	want := "expected string, found number"
	if err.Error() != want {
		t.Errorf("Unexpected.Error() = %q, want %q", err.Error(), want)
	}
}
