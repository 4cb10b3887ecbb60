package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types. The IDs are canonical:
// every use site of "int" shares the same TypeID.
type Builtins struct {
	Invalid TypeID
	None    TypeID
	Bool    TypeID
	Int     TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Interning makes structural equality coincide with TypeID equality.
type Interner struct {
	types    []Type
	index    map[Type]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with the built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[Type]TypeID, 16),
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.None = in.Intern(Type{Kind: KindNone})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID. Repeated calls
// with the same descriptor return the same ID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[t]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// Pointer interns a pointer-to-elem type.
func (in *Interner) Pointer(elem TypeID) TypeID {
	return in.Intern(MakePointer(elem))
}

// Array interns an array type of count elements.
func (in *Interner) Array(elem TypeID, count uint32) TypeID {
	return in.Intern(MakeArray(elem, count))
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Equal reports structural equality. Descriptors are interned, so two types
// are structurally equal exactly when their IDs match.
func (in *Interner) Equal(a, b TypeID) bool {
	return a != NoTypeID && a == b
}

// String renders a type for diagnostics, e.g. "int", "int*", "int[3]".
func (in *Interner) String(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch tt.Kind {
	case KindNone, KindBool, KindInt:
		return tt.Kind.String()
	case KindPointer:
		return in.String(tt.Elem) + "*"
	case KindArray:
		return fmt.Sprintf("%s[%d]", in.String(tt.Elem), tt.Count)
	default:
		return tt.Kind.String()
	}
}
