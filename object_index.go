package jsonsyntax

import "sort"

// indexes is the value stored per key in objectIndex: the representative
// (smallest) entry index holding that key, plus the sorted, strictly
// ascending list of every other ("redundant") index sharing the key.
// Invariants I1-I6 of spec.md §3 are maintained by objectIndex's methods,
// never by callers mutating an indexes value directly.
type indexes struct {
	representative int
	others         []int
}

func newIndexes(rep int) *indexes {
	return &indexes{representative: rep}
}

// first returns the representative index.
func (ix *indexes) first() int {
	return ix.representative
}

// redundant returns the first redundant index, if any.
func (ix *indexes) redundant() (int, bool) {
	if len(ix.others) == 0 {
		return 0, false
	}
	return ix.others[0], true
}

// all returns every index for this key in ascending order.
func (ix *indexes) all() []int {
	out := make([]int, 0, 1+len(ix.others))
	out = append(out, ix.representative)
	out = append(out, ix.others...)
	sort.Ints(out)
	return out
}

// insert records a new occurrence of the key at position index, keeping
// the representative as the minimum and others sorted ascending (I3, I4).
func (ix *indexes) insert(index int) {
	if index == ix.representative {
		return
	}
	if index < ix.representative {
		index, ix.representative = ix.representative, index
	}
	i := sort.SearchInts(ix.others, index)
	if i < len(ix.others) && ix.others[i] == index {
		return
	}
	ix.others = append(ix.others, 0)
	copy(ix.others[i+1:], ix.others[i:])
	ix.others[i] = index
}

// remove drops the given index from this key's bucket. It returns false
// only when index is the representative and there is no other index to
// promote in its place (i.e. the bucket would become empty) -- in that
// case the caller is responsible for deleting the whole bucket.
//
// When the representative is removed and a replacement is needed, the new
// representative is others[0], the smallest remaining index. spec.md §9
// calls out that some historical variants of this algorithm promoted
// others[1] instead; that is a bug, not an alternative, and is not
// reproduced here.
func (ix *indexes) remove(index int) bool {
	if ix.representative == index {
		if len(ix.others) == 0 {
			return false
		}
		ix.representative = ix.others[0]
		ix.others = ix.others[1:]
		return true
	}

	i := sort.SearchInts(ix.others, index)
	if i < len(ix.others) && ix.others[i] == index {
		ix.others = append(ix.others[:i], ix.others[i+1:]...)
	}
	return true
}

// shift decreases every index strictly greater than at by one, used after
// an entry at position at has been physically removed from the entries
// vector (I6).
func (ix *indexes) shift(at int) {
	if ix.representative > at {
		ix.representative--
	}
	for i, v := range ix.others {
		if v > at {
			ix.others[i] = v - 1
		}
	}
}

// shiftUp increases every index at or after at by one, used after an entry
// has been inserted at position at (e.g. PushFront, InsertFront).
func (ix *indexes) shiftUp(at int) {
	if ix.representative >= at {
		ix.representative++
	}
	for i, v := range ix.others {
		if v >= at {
			ix.others[i] = v + 1
		}
	}
	sort.Ints(ix.others)
}

// objectIndex is the hashed side index over an Object's entry vector: a
// map from key to the set of entry positions sharing that key. It aliases
// entry positions, never entry contents, so every mutation that changes
// positions must call shift/shiftUp to keep the index in sync (spec.md
// §5).
type objectIndex struct {
	buckets map[string]*indexes
}

func newObjectIndex() objectIndex {
	return objectIndex{buckets: make(map[string]*indexes)}
}

// get returns the indexes bucket for key, if any.
func (oi objectIndex) get(key string) (*indexes, bool) {
	ix, ok := oi.buckets[key]
	return ix, ok
}

// insert associates entries[at].Key with position at. It returns true if
// no entry was already associated with that key (i.e. a new bucket was
// created).
func (oi objectIndex) insert(key string, at int) bool {
	if ix, ok := oi.buckets[key]; ok {
		ix.insert(at)
		return false
	}
	oi.buckets[key] = newIndexes(at)
	return true
}

// remove drops the association between key and position at. If the bucket
// becomes empty, it is deleted from the map (I2).
func (oi objectIndex) remove(key string, at int) {
	ix, ok := oi.buckets[key]
	if !ok {
		return
	}
	if !ix.remove(at) {
		delete(oi.buckets, key)
	}
}

// shift applies indexes.shift(at) to every bucket.
func (oi objectIndex) shift(at int) {
	for _, ix := range oi.buckets {
		ix.shift(at)
	}
}

// shiftUp applies indexes.shiftUp(at) to every bucket.
func (oi objectIndex) shiftUp(at int) {
	for _, ix := range oi.buckets {
		ix.shiftUp(at)
	}
}

// rebuild discards all buckets and rebuilds the index from scratch given a
// key-lookup function over the current entries vector. Used after Sort,
// which moves every entry and would otherwise require an O(n) shift per
// swap.
func (oi *objectIndex) rebuild(n int, keyAt func(int) string) {
	oi.buckets = make(map[string]*indexes, n)
	for i := 0; i < n; i++ {
		oi.insert(keyAt(i), i)
	}
}
