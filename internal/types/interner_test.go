package types

import (
	"testing"

	irtypes "github.com/llir/llvm/ir/types"
)

func TestBuiltinsAreCanonical(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if b.Int == NoTypeID || b.Bool == NoTypeID || b.None == NoTypeID {
		t.Fatalf("builtin IDs not assigned: %+v", b)
	}
	if got := in.Intern(Type{Kind: KindInt}); got != b.Int {
		t.Errorf("re-interning int: got %d, want canonical %d", got, b.Int)
	}
	if got := in.Intern(Type{Kind: KindBool}); got != b.Bool {
		t.Errorf("re-interning bool: got %d, want canonical %d", got, b.Bool)
	}
}

func TestInternIdempotent(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	p1 := in.Pointer(b.Int)
	p2 := in.Pointer(b.Int)
	if p1 != p2 {
		t.Errorf("interning int* twice: got %d and %d", p1, p2)
	}

	a1 := in.Array(b.Int, 3)
	a2 := in.Array(b.Int, 3)
	if a1 != a2 {
		t.Errorf("interning int[3] twice: got %d and %d", a1, a2)
	}
	if a3 := in.Array(b.Int, 4); a3 == a1 {
		t.Errorf("int[3] and int[4] share ID %d", a1)
	}
	if in.Pointer(b.Bool) == p1 {
		t.Error("bool* and int* share an ID")
	}
}

func TestStructuralEquality(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	nested1 := in.Pointer(in.Array(b.Int, 2))
	nested2 := in.Pointer(in.Array(b.Int, 2))
	if !in.Equal(nested1, nested2) {
		t.Errorf("structurally equal types not Equal: %d vs %d", nested1, nested2)
	}
	if in.Equal(nested1, in.Pointer(b.Int)) {
		t.Error("int[2]* equals int*")
	}
	if in.Equal(NoTypeID, NoTypeID) {
		t.Error("NoTypeID equals itself")
	}
}

func TestString(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		id   TypeID
		want string
	}{
		{b.None, "none"},
		{b.Bool, "bool"},
		{b.Int, "int"},
		{in.Pointer(b.Int), "int*"},
		{in.Array(b.Int, 3), "int[3]"},
		{in.Pointer(in.Array(b.Bool, 2)), "bool[2]*"},
		{NoTypeID, "<invalid>"},
	}
	for _, tt := range tests {
		if got := in.String(tt.id); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestLLVMMapping(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		name string
		id   TypeID
		want irtypes.Type
	}{
		{"none", b.None, irtypes.Void},
		{"bool", b.Bool, irtypes.I1},
		{"int", b.Int, irtypes.I64},
		{"pointer", in.Pointer(b.Int), irtypes.NewPointer(irtypes.I64)},
		{"array", in.Array(b.Int, 3), irtypes.NewArray(3, irtypes.I64)},
		{"nested", in.Array(in.Pointer(b.Bool), 2), irtypes.NewArray(2, irtypes.NewPointer(irtypes.I1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := in.LLVM(tt.id)
			if !got.Equal(tt.want) {
				t.Errorf("LLVM(%s) = %v, want %v", in.String(tt.id), got, tt.want)
			}
		})
	}
}
