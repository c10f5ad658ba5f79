package jsonsyntax

// smallCapacity is the inline storage capacity for String and Key: buffers
// at or under this many bytes are stored in the value itself rather than on
// the heap.
const smallCapacity = 16

// smallBuf is a UTF-8 byte buffer that stores short content (<= 16 bytes)
// inline in a fixed array, falling back to a heap string for longer
// content. String and Key both wrap it: Key exists as a distinct type (not
// a type alias) so it can carry its own hashing/equality identity for use
// as an Object index key, even though its storage is identical to String's.
type smallBuf struct {
	n      int8 // -1 means "use heap", otherwise length of inline data
	inline [smallCapacity]byte
	heap   string
}

func newSmallBuf(s string) smallBuf {
	if len(s) <= smallCapacity {
		var b smallBuf
		b.n = int8(len(s))
		copy(b.inline[:], s)
		return b
	}
	return smallBuf{n: -1, heap: s}
}

func (b smallBuf) String() string {
	if b.n < 0 {
		return b.heap
	}
	return string(b.inline[:b.n])
}

func (b smallBuf) Len() int {
	if b.n < 0 {
		return len(b.heap)
	}
	return int(b.n)
}

func (b smallBuf) IsInline() bool {
	return b.n >= 0
}

// String is a UTF-8 string value, inline-optimised when short.
type String struct {
	buf smallBuf
}

// NewString constructs a String from a Go string.
func NewString(s string) String {
	return String{buf: newSmallBuf(s)}
}

// String returns the underlying Go string.
func (s String) String() string {
	return s.buf.String()
}

// Len returns the byte length.
func (s String) Len() int {
	return s.buf.Len()
}

// Bytes returns the UTF-8 bytes as a freshly allocated slice.
func (s String) Bytes() []byte {
	return []byte(s.buf.String())
}

// IsInline reports whether the content fits in the inline buffer, i.e. no
// heap allocation backs it.
func (s String) IsInline() bool {
	return s.buf.IsInline()
}

// Equal reports whether s and other hold the same bytes.
func (s String) Equal(other String) bool {
	return s.buf.String() == other.buf.String()
}

// Key is an object key: a UTF-8 string with a distinct type from String so
// it can be used for keyed lookup and hashing in Object and its key index
// (objectIndex).
type Key struct {
	buf smallBuf
}

// NewKey constructs a Key from a Go string.
func NewKey(s string) Key {
	return Key{buf: newSmallBuf(s)}
}

// String returns the underlying Go string.
func (k Key) String() string {
	return k.buf.String()
}

// Len returns the byte length.
func (k Key) Len() int {
	return k.buf.Len()
}

// IsInline reports whether the content fits in the inline buffer.
func (k Key) IsInline() bool {
	return k.buf.IsInline()
}

// Equal reports whether k and other hold the same bytes.
func (k Key) Equal(other Key) bool {
	return k.buf.String() == other.buf.String()
}

// AsString converts the key to a String, sharing the same representation
// rules (inline-when-short).
func (k Key) AsString() String {
	return String{buf: k.buf}
}
