package jsonsyntax

import "strings"

// Kind identifies which of the six JSON value variants a Value holds.
type Kind uint8

// The six JSON value kinds.
const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject

	numKinds
)

var kindStrings = [numKinds]string{
	KindNull:    "null",
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

// String returns the kind's lowercase name, e.g. "boolean".
func (k Kind) String() string {
	if k >= numKinds {
		return "<unknown>"
	}
	return kindStrings[k]
}

// Set returns the single-kind KindSet containing only k.
func (k Kind) Set() KindSet {
	return KindSet(1 << uint(k))
}

// KindSet is a bitset over the six JSON Kinds.
type KindSet uint8

// NoKinds is the empty set.
const NoKinds KindSet = 0

// AllKinds is the set containing every Kind.
const AllKinds KindSet = KindSet(1<<uint(numKinds)) - 1

// Or returns the union of s and k.
func (s KindSet) Or(k Kind) KindSet {
	return s | k.Set()
}

// And returns the intersection of s and k.
func (s KindSet) And(k Kind) KindSet {
	return s & k.Set()
}

// Union returns the union of s and other.
func (s KindSet) Union(other KindSet) KindSet {
	return s | other
}

// Intersection returns the intersection of s and other.
func (s KindSet) Intersection(other KindSet) KindSet {
	return s & other
}

// Contains reports whether k is a member of s.
func (s KindSet) Contains(k Kind) bool {
	return s&k.Set() != 0
}

// Len returns the number of kinds in the set.
func (s KindSet) Len() int {
	n := 0
	for b := s; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// IsEmpty reports whether the set has no members.
func (s KindSet) IsEmpty() bool {
	return s == 0
}

// Kinds returns the members of s in Kind declaration order.
func (s KindSet) Kinds() []Kind {
	kinds := make([]Kind, 0, s.Len())
	for k := Kind(0); k < numKinds; k++ {
		if s.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// String renders the set as a comma-separated list, as Disjunction does.
func (s KindSet) String() string {
	return s.Disjunction()
}

// Disjunction renders the set as an English disjunction, e.g.
// "null, string or object". The full set renders as "anything" and the
// empty set as "nothing".
func (s KindSet) Disjunction() string {
	return s.join(" or ")
}

// Conjunction renders the set as an English conjunction, e.g.
// "null, string and object". The full set renders as "anything" and the
// empty set as "nothing".
func (s KindSet) Conjunction() string {
	return s.join(" and ")
}

func (s KindSet) join(lastSep string) string {
	if s == AllKinds {
		return "anything"
	}

	kinds := s.Kinds()
	if len(kinds) == 0 {
		return "nothing"
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	if len(names) == 1 {
		return names[0]
	}

	return strings.Join(names[:len(names)-1], ", ") + lastSep + names[len(names)-1]
}
