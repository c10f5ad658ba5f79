package jsonsyntax

// UnorderedEqual reports whether v and other are structurally equal up to
// the order of object entries. Arrays remain order-sensitive (position is
// semantically meaningful for a JSON array); only object entry order is
// ignored. Duplicate keys are respected by multiplicity: an object with two
// entries for "a" is only unordered-equal to another object that also has
// exactly two entries whose key/value pairs match it, not one that merely
// contains "a" once.
func UnorderedEqual(v, other *Value) bool {
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
			if !UnorderedEqual(&v.array[i], &other.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return unorderedEqualObject(v.object, other.object)
	}
	return false
}

// unorderedEqualObject compares two entry multisets: every entry of a must
// match a distinct, not-yet-matched entry of b. For equal-length entry
// vectors this injective matching is a bijection, so the reverse direction
// is not checked separately.
func unorderedEqualObject(a, b *Object) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	used := make([]bool, len(b.entries))
	for i := range a.entries {
		found := false
		for j := range b.entries {
			if used[j] {
				continue
			}
			if a.entries[i].Key.Equal(b.entries[j].Key) && UnorderedEqual(&a.entries[i].Value, &b.entries[j].Value) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
