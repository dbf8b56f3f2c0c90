package rdb

import "fmt"

// Kind discriminates the closed set of reflected entity variants.
type Kind uint8

const (
	KindNamespace Kind = iota
	KindType
	KindClass
	KindEnum
	KindEnumConstant
	KindFunction
	KindField

	numKinds
)

// String returns the lowercase kind label used in exports and dumps.
func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindType:
		return "type"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindEnumConstant:
		return "enum_constant"
	case KindFunction:
		return "function"
	case KindField:
		return "field"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindNamespace, KindType, KindClass, KindEnum,
		KindEnumConstant, KindFunction, KindField,
	}
}

// Modifier describes how a field's type is passed.
type Modifier uint8

const (
	ModifierValue Modifier = iota
	ModifierPointer
	ModifierReference
)

func (m Modifier) String() string {
	switch m {
	case ModifierPointer:
		return "pointer"
	case ModifierReference:
		return "reference"
	}
	return "value"
}

// Primitive is one reflected program entity. Every variant shares the same
// scoping scheme: Parent holds the *name* of the enclosing scope, not a
// reference to its record, so a primitive may name a scope that has not been
// registered yet (or ever). Payload fields beyond the shared triple are
// meaningful only for the kinds noted on each field.
//
// Primitives are created once by a scanner, inserted, and never mutated.
type Primitive struct {
	Kind   Kind
	Name   Name
	Parent Name

	// Base and Size describe a Class: single base class (NoName when the
	// class has none) and total size including alignment.
	Base Name
	Size uint32

	// Value is an EnumConstant's value. Width and signedness of the source
	// constant are not modeled; everything is carried as signed 64-bit.
	Value int64

	// UniqueID distinguishes same-named Function overloads. Supplied by the
	// scanner; identity, not signature.
	UniqueID uint32

	// Field payload. Offset is a byte offset within the parent class, or the
	// ordinal within the parameter list when OwnerID is non-zero. OwnerID is
	// the owning function's UniqueID; zero means the field is a class member.
	Type     Name
	Modifier Modifier
	IsConst  bool
	Offset   int32
	OwnerID  uint32
}

// NewNamespace returns a pure scope node.
func NewNamespace(name, parent Name) Primitive {
	return Primitive{Kind: KindNamespace, Name: name, Parent: parent}
}

// NewType returns a basic built-in or user type.
func NewType(name, parent Name) Primitive {
	return Primitive{Kind: KindType, Name: name, Parent: parent}
}

// NewClass returns a class with a single base (NoName for none) and its
// total size.
func NewClass(name, parent, base Name, size uint32) Primitive {
	return Primitive{Kind: KindClass, Name: name, Parent: parent, Base: base, Size: size}
}

// NewEnum returns an enumeration type.
func NewEnum(name, parent Name) Primitive {
	return Primitive{Kind: KindEnum, Name: name, Parent: parent}
}

// NewEnumConstant returns a name/value enumeration constant.
func NewEnumConstant(name, parent Name, value int64) Primitive {
	return Primitive{Kind: KindEnumConstant, Name: name, Parent: parent, Value: value}
}

// NewFunction returns a function or method; uniqueID disambiguates overloads.
func NewFunction(name, parent Name, uniqueID uint32) Primitive {
	return Primitive{Kind: KindFunction, Name: name, Parent: parent, UniqueID: uniqueID}
}

// NewField returns a class field (ownerID zero) or a function parameter
// (ownerID set to the owning function's unique id).
func NewField(name, parent, typ Name, mod Modifier, isConst bool, offset int32, ownerID uint32) Primitive {
	return Primitive{
		Kind: KindField, Name: name, Parent: parent,
		Type: typ, Modifier: mod, IsConst: isConst, Offset: offset, OwnerID: ownerID,
	}
}

// Equal reports per-kind identity, the relation Merge dedups on. Every kind
// defines one: scope-like kinds compare (name, parent); Class additionally
// compares base and size; EnumConstant adds value; Function adds unique id;
// Field compares all of its payload. Primitives of different kinds are never
// equal.
func (p Primitive) Equal(o Primitive) bool {
	if p.Kind != o.Kind || p.Name != o.Name || p.Parent != o.Parent {
		return false
	}
	switch p.Kind {
	case KindClass:
		return p.Base == o.Base && p.Size == o.Size
	case KindEnumConstant:
		return p.Value == o.Value
	case KindFunction:
		return p.UniqueID == o.UniqueID
	case KindField:
		return p.Type == o.Type && p.Modifier == o.Modifier &&
			p.IsConst == o.IsConst && p.Offset == o.Offset && p.OwnerID == o.OwnerID
	}
	return true
}
