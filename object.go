package jsonsyntax

import "sort"

// Entry is a single (key, value) pair held by an Object.
type Entry struct {
	Key   Key
	Value Value
}

// NewEntry constructs an Entry.
func NewEntry(key Key, value Value) Entry {
	return Entry{Key: key, Value: value}
}

// Object is an insertion-ordered, duplicate-preserving JSON object: an
// ordered vector of entries plus a hashed side index (objectIndex) mapping
// each key to the positions of every entry sharing it. It is not a map:
// duplicate keys are kept, definition order is preserved, and lookup by key
// is only average-O(1) because of the side index, not because entries
// themselves are keyed storage.
type Object struct {
	entries []Entry
	index   objectIndex
}

// NewObject returns a new, empty Object.
func NewObject() *Object {
	return &Object{index: newObjectIndex()}
}

// ObjectFromEntries builds an Object from entries taken in order, building
// the key index accordingly. entries is taken by reference.
func ObjectFromEntries(entries []Entry) *Object {
	o := &Object{entries: entries, index: newObjectIndex()}
	for i := range entries {
		o.index.insert(entries[i].Key.String(), i)
	}
	return o
}

// Len returns the number of entries, including duplicates.
func (o *Object) Len() int {
	return len(o.entries)
}

// IsEmpty reports whether the object has no entries.
func (o *Object) IsEmpty() bool {
	return len(o.entries) == 0
}

// Entries returns the entry vector in insertion order. The returned slice
// aliases the object's storage.
func (o *Object) Entries() []Entry {
	return o.entries
}

// Push appends a new entry at the end, regardless of whether the key
// already exists. It reports whether no prior entry shared the key. Runs
// in O(1) amortised.
func (o *Object) Push(key Key, value Value) bool {
	i := len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})
	return o.index.insert(key.String(), i)
}

// PushFront prepends a new entry at position 0, regardless of whether the
// key already exists. It reports whether no prior entry shared the key.
// Runs in O(n): every existing index must shift up by one.
func (o *Object) PushFront(key Key, value Value) bool {
	o.entries = append(o.entries, Entry{})
	copy(o.entries[1:], o.entries[:len(o.entries)-1])
	o.entries[0] = Entry{Key: key, Value: value}
	o.index.shiftUp(0)
	return o.index.insert(key.String(), 0)
}

// Insert overwrites the representative entry for key with value if the key
// is already present (returning the values of every entry that held that
// key, overwritten representative first, then each redundant duplicate in
// ascending index order, each removed as it is reported). If the key is
// absent, Insert behaves like Push and returns nil. Each redundant duplicate
// is removed with the same shift as Remove, so Insert runs in
// O(duplicates * n) in the worst case.
func (o *Object) Insert(key Key, value Value) []Value {
	ix, ok := o.index.get(key.String())
	if !ok {
		o.Push(key, value)
		return nil
	}

	rep := ix.first()
	removed := []Value{o.entries[rep].Value}
	o.entries[rep].Value = value

	for {
		dupIdx, has := ix.redundant()
		if !has {
			break
		}
		removed = append(removed, o.entries[dupIdx].Value)
		o.removeAt(dupIdx)
	}

	return removed
}

// InsertFront is like Insert, but if the key is absent the new entry is
// placed at position 0 (like PushFront). If the key is already present, the
// representative entry is overwritten in place -- for a front-duplicate key
// the representative already sits at position 0, so this replaces in place
// while preserving position 0, per spec.md §9.
func (o *Object) InsertFront(key Key, value Value) []Value {
	ix, ok := o.index.get(key.String())
	if !ok {
		o.PushFront(key, value)
		return nil
	}

	rep := ix.first()
	removed := []Value{o.entries[rep].Value}
	o.entries[rep].Value = value

	for {
		dupIdx, has := ix.redundant()
		if !has {
			break
		}
		removed = append(removed, o.entries[dupIdx].Value)
		o.removeAt(dupIdx)
	}

	return removed
}

// Remove removes every entry matching key, returning their values in
// ascending index order. Runs in O(duplicates * n) in the worst case
// (each removal shifts the index), matching the teacher/original
// "find current first index, remove it" loop (spec.md §4.2).
func (o *Object) Remove(key string) []Value {
	var removed []Value
	for {
		ix, ok := o.index.get(key)
		if !ok {
			break
		}
		at := ix.first()
		removed = append(removed, o.entries[at].Value)
		o.removeAt(at)
	}
	return removed
}

// removeAt physically removes the entry at position at, shifting every
// greater index in the key index down by one (I6).
func (o *Object) removeAt(at int) {
	key := o.entries[at].Key.String()
	o.index.remove(key, at)
	o.entries = append(o.entries[:at], o.entries[at+1:]...)
	o.index.shift(at)
}

// IndexesOf returns the positions of every entry matching key, in
// ascending order.
func (o *Object) IndexesOf(key string) []int {
	ix, ok := o.index.get(key)
	if !ok {
		return nil
	}
	return ix.all()
}

// Get returns the values of every entry matching key, in ascending index
// order. Runs in O(1) average to locate the bucket.
func (o *Object) Get(key string) []Value {
	idxs := o.IndexesOf(key)
	out := make([]Value, len(idxs))
	for i, at := range idxs {
		out[i] = o.entries[at].Value
	}
	return out
}

// GetEntries returns pointers to every entry matching key, in ascending
// index order. The pointers alias the object's storage.
func (o *Object) GetEntries(key string) []*Entry {
	idxs := o.IndexesOf(key)
	out := make([]*Entry, len(idxs))
	for i, at := range idxs {
		out[i] = &o.entries[at]
	}
	return out
}

// GetUnique returns the single value matching key. It returns
// (Value{}, false, nil) if no entry matches, and a *DuplicateError if more
// than one entry matches.
func (o *Object) GetUnique(key string) (Value, bool, error) {
	idxs := o.IndexesOf(key)
	switch len(idxs) {
	case 0:
		return Value{}, false, nil
	case 1:
		return o.entries[idxs[0]].Value, true, nil
	default:
		return Value{}, false, &DuplicateError{Key: key, FirstIndex: idxs[0], SecondIndex: idxs[1]}
	}
}

// GetUniqueEntry is like GetUnique but returns the matching Entry.
func (o *Object) GetUniqueEntry(key string) (*Entry, error) {
	idxs := o.IndexesOf(key)
	switch len(idxs) {
	case 0:
		return nil, nil
	case 1:
		return &o.entries[idxs[0]], nil
	default:
		return nil, &DuplicateError{Key: key, FirstIndex: idxs[0], SecondIndex: idxs[1]}
	}
}

// ContainsKey reports whether any entry matches key.
func (o *Object) ContainsKey(key string) bool {
	_, ok := o.index.get(key)
	return ok
}

// Sort stably sorts entries by key (bytewise), breaking ties between
// duplicate keys by value ordering, then rebuilds the key index. Used
// directly by callers who want key ordering without touching number
// literals, and by Canonicalize, which sorts after recursively
// canonicalising every nested value (spec.md §4.5).
func (o *Object) Sort() {
	sort.SliceStable(o.entries, func(i, j int) bool {
		a, b := o.entries[i].Key.String(), o.entries[j].Key.String()
		if a != b {
			return a < b
		}
		return compareValues(&o.entries[i].Value, &o.entries[j].Value) < 0
	})
	o.index.rebuild(len(o.entries), func(i int) string { return o.entries[i].Key.String() })
}

// Canonicalize recursively canonicalises every nested value (RFC 8785
// number/string form) and then sorts entries by key.
func (o *Object) Canonicalize() {
	for i := range o.entries {
		o.entries[i].Value.Canonicalize()
	}
	o.Sort()
}

// Equal reports whether o and other are entry-for-entry, order-preserving
// equal (use UnorderedEqual for order-insensitive comparison).
func (o *Object) Equal(other *Object) bool {
	if len(o.entries) != len(other.entries) {
		return false
	}
	for i := range o.entries {
		if !o.entries[i].Key.Equal(other.entries[i].Key) {
			return false
		}
		if !o.entries[i].Value.Equal(&other.entries[i].Value) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	entries := make([]Entry, len(o.entries))
	for i := range o.entries {
		entries[i] = Entry{Key: o.entries[i].Key, Value: o.entries[i].Value.Clone()}
	}
	return ObjectFromEntries(entries)
}

// GetFragment finds the index-th fragment nested under o (0 is o's first
// entry's entry-group fragment) by descent, in the same ordering
// Traverse/Walk use. It returns an error if index is out of range.
func (o *Object) GetFragment(index int) (FragmentRef, error) {
	for i := range o.entries {
		if frag, rem, ok := o.entries[i].getFragment(index); ok {
			return frag, nil
		} else {
			index = rem
		}
	}
	return FragmentRef{}, &SyntaxError{Op: "GetFragment", Msg: "offset out of range"}
}

// GetFragment finds the index-th fragment nested under e (0 is e's own
// entry-group fragment, 1 its key, everything after its value) by descent.
// It returns an error if index is out of range.
func (e *Entry) GetFragment(index int) (FragmentRef, error) {
	frag, _, ok := e.getFragment(index)
	if !ok {
		return FragmentRef{}, &SyntaxError{Op: "GetFragment", Msg: "offset out of range"}
	}
	return frag, nil
}

// MappedEntry pairs an Entry with the CodeMap offsets of its entry-group,
// key and value fragments.
type MappedEntry struct {
	Entry       *Entry
	EntryOffset int
	KeyOffset   int
	ValueOffset int
}

// IterMapped returns every entry together with the CodeMap offsets of its
// entry-group, key and value fragments, given the offset of the object
// fragment itself in code-map cm. This relies on the code-map emission
// contract (spec.md §4.1): the object entry precedes, for each entry in
// insertion order, an entry-group entry, then the key entry, then the
// value's own fragments, and each entry-group's Volume tells us where the
// next entry-group begins.
func (o *Object) IterMapped(cm *CodeMap, offset int) []MappedEntry {
	out := make([]MappedEntry, 0, len(o.entries))
	pos := offset + 1
	for i := range o.entries {
		vol := cm.At(pos).Volume
		out = append(out, MappedEntry{
			Entry:       &o.entries[i],
			EntryOffset: pos,
			KeyOffset:   pos + 1,
			ValueOffset: pos + 2,
		})
		pos += vol
	}
	return out
}

// compareValues imposes a deterministic total order over Values, used to
// break ties between duplicate keys in Sort. Ordering is by Kind first (in
// declaration order), then by payload.
func compareValues(a, b *Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}

	switch a.kind {
	case KindNull:
		return 0
	case KindBoolean:
		if a.boolean == b.boolean {
			return 0
		}
		if !a.boolean {
			return -1
		}
		return 1
	case KindNumber:
		as, bs := a.number.String(), b.number.String()
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	case KindString:
		as, bs := a.str.String(), b.str.String()
		switch {
		case as < bs:
			return -1
		case as > bs:
			return 1
		default:
			return 0
		}
	case KindArray:
		for i := 0; i < len(a.array) && i < len(b.array); i++ {
			if c := compareValues(&a.array[i], &b.array[i]); c != 0 {
				return c
			}
		}
		return len(a.array) - len(b.array)
	case KindObject:
		for i := 0; i < len(a.object.entries) && i < len(b.object.entries); i++ {
			ea, eb := &a.object.entries[i], &b.object.entries[i]
			ak, bk := ea.Key.String(), eb.Key.String()
			if ak != bk {
				if ak < bk {
					return -1
				}
				return 1
			}
			if c := compareValues(&ea.Value, &eb.Value); c != 0 {
				return c
			}
		}
		return len(a.object.entries) - len(b.object.entries)
	}
	return 0
}
