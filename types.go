package reflectdb

import "github.com/jward/reflectdb/internal/rdb"

// Public type aliases for internal rdb types. These are Go type aliases (=) —
// identical to the internal types at compile time. External scanners and
// consumers use these names; no conversion is needed.

type Database = rdb.Database
type NameTable = rdb.NameTable
type Name = rdb.Name
type Primitive = rdb.Primitive
type Store = rdb.Store
type Kind = rdb.Kind
type Modifier = rdb.Modifier

const (
	KindNamespace    = rdb.KindNamespace
	KindType         = rdb.KindType
	KindClass        = rdb.KindClass
	KindEnum         = rdb.KindEnum
	KindEnumConstant = rdb.KindEnumConstant
	KindFunction     = rdb.KindFunction
	KindField        = rdb.KindField

	ModifierValue     = rdb.ModifierValue
	ModifierPointer   = rdb.ModifierPointer
	ModifierReference = rdb.ModifierReference

	// NoName marks an anonymous primitive; distinct from an interned "".
	NoName = rdb.NoName
)

// Constructors and hash functions, re-exported for scanners.
var (
	NewNamespace    = rdb.NewNamespace
	NewType         = rdb.NewType
	NewClass        = rdb.NewClass
	NewEnum         = rdb.NewEnum
	NewEnumConstant = rdb.NewEnumConstant
	NewFunction     = rdb.NewFunction
	NewField        = rdb.NewField

	HashName  = rdb.HashName
	MixHashes = rdb.MixHashes

	Kinds = rdb.Kinds
)
