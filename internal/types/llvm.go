package types

import (
	irtypes "github.com/llir/llvm/ir/types"
)

// LLVM maps a type to its target machine representation. The mapping is
// total over the closed kind set: None is void, Bool is i1, Int is i64,
// pointers and arrays map element-wise.
func (in *Interner) LLVM(id TypeID) irtypes.Type {
	tt, ok := in.Lookup(id)
	if !ok {
		return irtypes.Void
	}
	switch tt.Kind {
	case KindNone:
		return irtypes.Void
	case KindBool:
		return irtypes.I1
	case KindInt:
		return irtypes.I64
	case KindPointer:
		return irtypes.NewPointer(in.LLVM(tt.Elem))
	case KindArray:
		return irtypes.NewArray(uint64(tt.Count), in.LLVM(tt.Elem))
	default:
		return irtypes.Void
	}
}
