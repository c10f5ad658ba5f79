package jsonsyntax

import "testing"

// These two cases mirror the worked examples used to validate the original
// code-map construction: a flat array and a one-level nested array, checking
// that volume always equals the fragment's own entry plus every descendant's.
func TestCodeMapFlatArray(t *testing.T) {
	v, cm, err := ParseString(`[1,2,3]`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	items, _ := v.AsArray()
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	// entry 0: the array itself, volume 4 (itself + 3 scalars)
	root := cm.At(0)
	if root.Volume != 4 {
		t.Errorf("root volume = %d, want 4", root.Volume)
	}
	if root.Span.Start != 0 || root.Span.End != 7 {
		t.Errorf("root span = %s, want [0, 7)", root.Span)
	}
	for i := 1; i <= 3; i++ {
		if cm.At(i).Volume != 1 {
			t.Errorf("entry %d volume = %d, want 1 (scalar)", i, cm.At(i).Volume)
		}
	}
	if cm.Len() != 4 {
		t.Errorf("cm.Len() = %d, want 4", cm.Len())
	}
}

func TestCodeMapNestedArray(t *testing.T) {
	v, cm, err := ParseString(`[[1,2],3]`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	// layout: 0=outer array (vol 5), 1=inner array (vol 3), 2=1, 3=2, 4=3
	if cm.Len() != 5 {
		t.Fatalf("cm.Len() = %d, want 5", cm.Len())
	}
	if cm.At(0).Volume != 5 {
		t.Errorf("outer volume = %d, want 5", cm.At(0).Volume)
	}
	if cm.At(1).Volume != 3 {
		t.Errorf("inner volume = %d, want 3", cm.At(1).Volume)
	}
	if !cm.At(0).Span.Contains(cm.At(1).Span) {
		t.Error("outer span should contain inner span")
	}
	items, _ := v.AsArray()
	inner, ok := items[0].AsArray()
	if !ok || len(inner) != 2 {
		t.Fatalf("expected inner array of length 2, got %v ok=%v", inner, ok)
	}
}

func TestCodeMapObjectEntryGroupsIncludeKeyAndValue(t *testing.T) {
	_, cm, err := ParseString(`{"a":1,"b":[2,3]}`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	// 0=object(vol 9), 1=entry a(vol 3), 2=key a, 3=value 1,
	// 4=entry b(vol 5), 5=key b, 6=array(vol 3), 7=2, 8=3
	if cm.At(0).Volume != 9 {
		t.Errorf("object volume = %d, want 9", cm.At(0).Volume)
	}
	if cm.At(1).Volume != 3 {
		t.Errorf("entry a volume = %d, want 3", cm.At(1).Volume)
	}
	if cm.At(4).Volume != 5 {
		t.Errorf("entry b volume = %d, want 5", cm.At(4).Volume)
	}
}

func TestCodeMapTraverseMatchesLength(t *testing.T) {
	v, cm, err := ParseString(`{"x":[true,null,"s"],"y":1.5}`, Options{})
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	frags := v.Traverse()
	if len(frags) != cm.Len() {
		t.Errorf("len(Traverse()) = %d, cm.Len() = %d, want equal", len(frags), cm.Len())
	}
	for i, f := range frags {
		if f.Offset != i {
			t.Errorf("fragment %d has offset %d, want %d", i, f.Offset, i)
		}
	}
}

func TestMapped(t *testing.T) {
	m := NewMapped(3, "hello")
	if m.Offset != 3 || m.Value != "hello" {
		t.Errorf("NewMapped = %+v, want {3 hello}", m)
	}
}
