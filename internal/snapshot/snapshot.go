// Package snapshot persists a per-unit reflection database to disk and
// rebuilds it later. Snapshots are the handoff between scan processes, which
// run one per translation unit fully in parallel, and the merge coordinator,
// which folds them sequentially into one aggregate.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jward/reflectdb/internal/rdb"
)

// SchemaVersion guards the payload layout. Increment when the payload format
// changes so stale snapshots fail loudly instead of decoding garbage.
const SchemaVersion uint16 = 1

// payload is the on-disk shape: the full name table plus every primitive,
// grouped per kind, with unnamed fields carried separately. Handles carry
// their own hashes, so rebuilding needs no key material beyond the records.
type payload struct {
	Schema     uint16
	Names      map[uint32]string
	Primitives [][]rdb.Primitive // indexed by rdb.Kind
	Unnamed    []rdb.Primitive
}

// Save writes db to path as a versioned msgpack snapshot. The write is
// atomic: a temp file in the target directory is renamed over path, so a
// crashed scan never leaves a truncated snapshot for the coordinator.
func Save(path string, db *rdb.Database) error {
	p := payload{
		Schema:     SchemaVersion,
		Names:      make(map[uint32]string, db.Names().Len()),
		Primitives: make([][]rdb.Primitive, len(rdb.Kinds())),
	}
	db.Names().Each(func(n rdb.Name, text string) {
		p.Names[n.Hash()] = text
	})
	for _, kind := range rdb.Kinds() {
		db.Store(kind).Walk(func(_ uint32, prim rdb.Primitive) {
			p.Primitives[kind] = append(p.Primitives[kind], prim)
		})
	}
	db.UnnamedFields().Walk(func(_ uint32, prim rdb.Primitive) {
		p.Unnamed = append(p.Unnamed, prim)
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot: create directory: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(path), "rdb-*")
	if err != nil {
		return fmt.Errorf("snapshot: create temp file: %w", err)
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close temp file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("snapshot: rename into place: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save and rebuilds the database. A schema
// version mismatch is an error, not a best-effort decode.
func Load(path string) (*rdb.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", path, err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("snapshot: %s has schema %d, want %d", path, p.Schema, SchemaVersion)
	}

	db := rdb.NewDatabase()
	for _, text := range p.Names {
		db.Intern(text)
	}
	for _, prims := range p.Primitives {
		for _, prim := range prims {
			db.AddPrimitive(prim)
		}
	}
	for _, prim := range p.Unnamed {
		db.AddPrimitive(prim)
	}
	return db, nil
}
