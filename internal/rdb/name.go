package rdb

import "hash/fnv"

// Name is an interned handle for a scope-qualified string. It carries the
// 32-bit content hash of the text, so two Names compare equal in O(1)
// without touching the underlying bytes. The zero value is NoName, the
// anonymity sentinel — distinct from an interned empty string, which hashes
// to the FNV offset basis.
type Name uint32

// NoName marks an anonymous primitive (e.g. an unnamed function parameter).
const NoName Name = 0

// Hash returns the content hash the handle carries.
func (n Name) Hash() uint32 { return uint32(n) }

// IsNone reports whether the handle is the anonymity sentinel.
func (n Name) IsNone() bool { return n == NoName }

// HashName computes the deterministic 32-bit FNV-1a digest of text.
// Case-sensitive, byte-exact, and identical across independently running
// processes — this is the contract that makes cross-instance Merge possible.
func HashName(text string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	return h.Sum32()
}

// MixHashes combines two hashes into one, order-sensitively: in the common
// case MixHashes(a, b) != MixHashes(b, a). Used to build compound keys such
// as scope-qualified names.
func MixHashes(a, b uint32) uint32 {
	return a ^ (b + 0x9e3779b9 + (a << 6) + (a >> 2))
}

// NameTable is the content-addressed interning table mapping a hash back to
// the text it was computed from. Two distinct strings hashing identically are
// not detected; the text is retained per hash, so a verification pass could
// compare on match, but none is performed here.
type NameTable struct {
	names map[Name]string
}

// NewNameTable returns an empty table.
func NewNameTable() *NameTable {
	return &NameTable{names: make(map[Name]string)}
}

// Intern computes the hash of text, records the hash→text entry if absent,
// and returns the handle. Idempotent: equal content yields equal handles,
// on this table or any other.
func (t *NameTable) Intern(text string) Name {
	n := Name(HashName(text))
	if _, ok := t.names[n]; !ok {
		t.names[n] = text
	}
	return n
}

// ByHash returns the handle for an already-interned hash. It never inserts;
// a miss reports false.
func (t *NameTable) ByHash(h uint32) (Name, bool) {
	n := Name(h)
	if _, ok := t.names[n]; !ok {
		return NoName, false
	}
	return n, true
}

// Text resolves a handle back to its interned text. NoName and handles from
// another table that were never interned here report false.
func (t *NameTable) Text(n Name) (string, bool) {
	s, ok := t.names[n]
	return s, ok
}

// MergeFrom unions every entry of other into t. Interning is idempotent by
// content hash, so overlapping names never duplicate entries.
func (t *NameTable) MergeFrom(other *NameTable) {
	for n, s := range other.names {
		if _, ok := t.names[n]; !ok {
			t.names[n] = s
		}
	}
}

// Len returns the number of interned entries.
func (t *NameTable) Len() int { return len(t.names) }

// Each calls fn for every interned (handle, text) pair, in map order.
func (t *NameTable) Each(fn func(Name, string)) {
	for n, s := range t.names {
		fn(n, s)
	}
}
