package reflectdb

import (
	"github.com/jward/reflectdb/internal/rdb"
	"github.com/jward/reflectdb/internal/snapshot"
)

// New returns an empty Database for one scan pass.
func New() *Database {
	return rdb.NewDatabase()
}

// SaveSnapshot writes db to path as a versioned snapshot file, atomically.
// Scanners call this once per translation unit; the files feed [Combine].
func SaveSnapshot(path string, db *Database) error {
	return snapshot.Save(path, db)
}

// LoadSnapshot rebuilds a Database from a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Database, error) {
	return snapshot.Load(path)
}
