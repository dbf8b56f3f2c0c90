// Package export writes a merged reflection database into a SQLite file so
// downstream consumers can query the aggregate with plain SQL. The in-memory
// stores remain the programmatic read surface; this is the ad-hoc one.
package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jward/reflectdb/internal/rdb"
)

// Store is the SQLite writer for the export schema.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the export schema. Idempotent.
func (s *Store) Migrate() error {
	_, err := s.db.Exec(schemaDDL)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS names (
  hash            INTEGER PRIMARY KEY,
  text            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS namespaces (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS types (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS classes (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL,
  base_hash       INTEGER NOT NULL,
  size            INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS enums (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS enum_constants (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL,
  value           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS functions (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL,
  unique_id       INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS fields (
  id              INTEGER PRIMARY KEY,
  name_hash       INTEGER NOT NULL,
  parent_hash     INTEGER NOT NULL,
  type_hash       INTEGER NOT NULL,
  modifier        TEXT NOT NULL,
  is_const        BOOLEAN NOT NULL DEFAULT FALSE,
  offset          INTEGER NOT NULL,
  owner_unique_id INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_namespaces_name ON namespaces(name_hash);
CREATE INDEX IF NOT EXISTS idx_types_name ON types(name_hash);
CREATE INDEX IF NOT EXISTS idx_classes_name ON classes(name_hash);
CREATE INDEX IF NOT EXISTS idx_classes_base ON classes(base_hash);
CREATE INDEX IF NOT EXISTS idx_enums_name ON enums(name_hash);
CREATE INDEX IF NOT EXISTS idx_enum_constants_name ON enum_constants(name_hash);
CREATE INDEX IF NOT EXISTS idx_enum_constants_parent ON enum_constants(parent_hash);
CREATE INDEX IF NOT EXISTS idx_functions_name ON functions(name_hash);
CREATE INDEX IF NOT EXISTS idx_functions_parent ON functions(parent_hash);
CREATE INDEX IF NOT EXISTS idx_fields_name ON fields(name_hash);
CREATE INDEX IF NOT EXISTS idx_fields_parent ON fields(parent_hash);
CREATE INDEX IF NOT EXISTS idx_fields_type ON fields(type_hash);
`

// tableFor maps a kind to its export table.
func tableFor(kind rdb.Kind) string {
	switch kind {
	case rdb.KindNamespace:
		return "namespaces"
	case rdb.KindType:
		return "types"
	case rdb.KindClass:
		return "classes"
	case rdb.KindEnum:
		return "enums"
	case rdb.KindEnumConstant:
		return "enum_constants"
	case rdb.KindFunction:
		return "functions"
	case rdb.KindField:
		return "fields"
	}
	panic(fmt.Sprintf("export: no table for kind %s", kind))
}

// WriteDatabase inserts the full contents of db in one transaction: the name
// table first, then every store in deterministic walk order. Unnamed fields
// land in the fields table with a zero name_hash (the anonymity sentinel).
func (s *Store) WriteDatabase(db *rdb.Database) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	db.Names().Each(func(n rdb.Name, text string) {
		if err == nil {
			_, err = tx.Exec("INSERT OR IGNORE INTO names (hash, text) VALUES (?, ?)", n.Hash(), text)
		}
	})
	if err != nil {
		return fmt.Errorf("insert names: %w", err)
	}

	for _, kind := range rdb.Kinds() {
		if err = writeStore(tx, kind, db.Store(kind)); err != nil {
			return fmt.Errorf("insert %s: %w", tableFor(kind), err)
		}
	}
	if err = writeStore(tx, rdb.KindField, db.UnnamedFields()); err != nil {
		return fmt.Errorf("insert unnamed fields: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func writeStore(tx *sql.Tx, kind rdb.Kind, store *rdb.Store) error {
	var insertErr error
	store.Walk(func(_ uint32, p rdb.Primitive) {
		if insertErr != nil {
			return
		}
		insertErr = insertPrimitive(tx, kind, p)
	})
	return insertErr
}

func insertPrimitive(tx *sql.Tx, kind rdb.Kind, p rdb.Primitive) error {
	var err error
	switch kind {
	case rdb.KindClass:
		_, err = tx.Exec(
			"INSERT INTO classes (name_hash, parent_hash, base_hash, size) VALUES (?, ?, ?, ?)",
			p.Name.Hash(), p.Parent.Hash(), p.Base.Hash(), p.Size)
	case rdb.KindEnumConstant:
		_, err = tx.Exec(
			"INSERT INTO enum_constants (name_hash, parent_hash, value) VALUES (?, ?, ?)",
			p.Name.Hash(), p.Parent.Hash(), p.Value)
	case rdb.KindFunction:
		_, err = tx.Exec(
			"INSERT INTO functions (name_hash, parent_hash, unique_id) VALUES (?, ?, ?)",
			p.Name.Hash(), p.Parent.Hash(), p.UniqueID)
	case rdb.KindField:
		_, err = tx.Exec(
			"INSERT INTO fields (name_hash, parent_hash, type_hash, modifier, is_const, offset, owner_unique_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
			p.Name.Hash(), p.Parent.Hash(), p.Type.Hash(), p.Modifier.String(), p.IsConst, p.Offset, p.OwnerID)
	default:
		_, err = tx.Exec(
			fmt.Sprintf("INSERT INTO %s (name_hash, parent_hash) VALUES (?, ?)", tableFor(kind)),
			p.Name.Hash(), p.Parent.Hash())
	}
	return err
}
