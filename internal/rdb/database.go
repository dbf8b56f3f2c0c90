package rdb

import "fmt"

// builtinTypeNames are the fundamental type names seeded by
// SeedBuiltinTypes, so field and function signatures referencing
// fundamentals resolve without scanning library headers.
var builtinTypeNames = []string{
	"void",
	"bool",
	"char",
	"unsigned char",
	"wchar_t",
	"short",
	"unsigned short",
	"int",
	"unsigned int",
	"long",
	"unsigned long",
	"long long",
	"unsigned long long",
	"float",
	"double",
}

// Database is the in-memory reflection database for one translation unit —
// or, after merging, for many. It owns the name table, one named store per
// kind, and the unnamed field store (parameters without names, keyed by the
// owning scope's hash).
//
// A Database has no internal locking. The intended deployment builds one
// instance per independently scanned unit, fully in parallel, then folds
// them into an aggregate with strictly sequential Merge calls; the caller
// serializes all mutation of any single instance.
type Database struct {
	names         *NameTable
	stores        [numKinds]*Store
	unnamedFields *Store
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	d := &Database{
		names:         NewNameTable(),
		unnamedFields: NewStore(),
	}
	for k := range d.stores {
		d.stores[k] = NewStore()
	}
	return d
}

// Names returns the database's name table.
func (d *Database) Names() *NameTable { return d.names }

// Intern interns text into the database's name table and returns the handle.
func (d *Database) Intern(text string) Name { return d.names.Intern(text) }

// Store returns the named store for a kind. Read access for consumers;
// inserts go through AddPrimitive.
func (d *Database) Store(kind Kind) *Store { return d.stores[kind] }

// UnnamedFields returns the store of anonymous fields, keyed by the hash of
// each field's parent scope.
func (d *Database) UnnamedFields() *Store { return d.unnamedFields }

// unnamedStore maps a kind to its unnamed store. Only Field may be
// anonymous in this model; asking for any other kind is a programming
// error, not a data condition, and fails fast.
func (d *Database) unnamedStore(kind Kind) *Store {
	if kind != KindField {
		panic(fmt.Sprintf("rdb: no unnamed primitive store for kind %s", kind))
	}
	return d.unnamedFields
}

// AddPrimitive inserts p into the store for its kind. Anonymous primitives
// are keyed by their parent's hash in the kind's unnamed store — indexing by
// their own (sentinel) name would be meaningless. Named primitives are keyed
// by the hash their Name handle already carries; the text is never re-hashed.
func (d *Database) AddPrimitive(p Primitive) {
	if p.Name.IsNone() {
		d.unnamedStore(p.Kind).Insert(p.Parent.Hash(), p)
		return
	}
	d.stores[p.Kind].Insert(p.Name.Hash(), p)
}

// First returns the earliest-inserted primitive of the given kind whose name
// hashes equal to text. The text is hashed, not interned: a miss leaves the
// name table untouched. Not overload-complete — see All.
func (d *Database) First(kind Kind, text string) (Primitive, bool) {
	return d.stores[kind].First(HashName(text))
}

// All returns every primitive of the given kind named text, in insertion
// order. This is the overload-complete lookup.
func (d *Database) All(kind Kind, text string) []Primitive {
	return d.stores[kind].Range(HashName(text))
}

// SeedBuiltinTypes registers the fundamental type names as Type primitives
// at global scope. Idempotent in effect only across databases that never
// seeded; calling it twice on one database inserts duplicate entries, as any
// repeated AddPrimitive would.
func (d *Database) SeedBuiltinTypes() {
	for _, name := range builtinTypeNames {
		d.AddPrimitive(NewType(d.names.Intern(name), NoName))
	}
}

// Merge folds other into d. The name tables are unioned first — interning is
// idempotent by content hash, so overlapping names never duplicate. Then,
// for every kind (unnamed fields included), each of other's entries is
// appended unless an entry Equal to it is already present under the same
// key. Equality is defined for every kind, so Merge is a total dedup: merging
// a database with a content-identical copy of itself changes nothing, and
// merging disjoint databases sums their per-kind counts regardless of order.
func (d *Database) Merge(other *Database) {
	d.names.MergeFrom(other.names)
	for _, kind := range Kinds() {
		mergeStore(d.stores[kind], other.stores[kind])
	}
	mergeStore(d.unnamedFields, other.unnamedFields)
}

func mergeStore(dst, src *Store) {
	src.Walk(func(key uint32, p Primitive) {
		if !dst.Contains(key, p) {
			dst.Insert(key, p)
		}
	})
}
