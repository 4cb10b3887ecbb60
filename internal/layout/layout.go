package layout

import (
	"fmt"

	"fortio.org/safecast"

	"mxrlang/internal/types"
)

// TypeLayout is the ABI layout of a type for a specific Target.
type TypeLayout struct {
	Size  int
	Align int

	// Array/pointer only: element type.
	Elem  types.TypeID
	Count int // array only
}

// Engine computes memory layout for types. Layouts are total over the
// closed kind set, so queries cannot fail.
type Engine struct {
	Target Target
	Types  *types.Interner

	cache map[types.TypeID]TypeLayout
}

// New creates an Engine for the specified target.
func New(target Target, typesIn *types.Interner) *Engine {
	return &Engine{
		Target: target,
		Types:  typesIn,
		cache:  make(map[types.TypeID]TypeLayout, 32),
	}
}

// LayoutOf computes and caches the layout of a type.
func (e *Engine) LayoutOf(id types.TypeID) TypeLayout {
	if e == nil || e.Types == nil {
		return TypeLayout{Size: 0, Align: 1}
	}
	if cached, ok := e.cache[id]; ok {
		return cached
	}
	l := e.computeLayout(id)
	e.cache[id] = l
	return l
}

// SizeOf returns the size of a type in bytes.
func (e *Engine) SizeOf(id types.TypeID) int {
	return e.LayoutOf(id).Size
}

// AlignOf returns the alignment requirement of a type in bytes.
func (e *Engine) AlignOf(id types.TypeID) int {
	return e.LayoutOf(id).Align
}

func (e *Engine) computeLayout(id types.TypeID) TypeLayout {
	tt, ok := e.Types.Lookup(id)
	if !ok {
		return TypeLayout{Size: 0, Align: 1}
	}
	switch tt.Kind {
	case types.KindNone:
		return TypeLayout{Size: 0, Align: 1}
	case types.KindBool:
		return TypeLayout{Size: 1, Align: 1}
	case types.KindInt:
		return TypeLayout{Size: e.Target.IntSize, Align: e.Target.IntAlign}
	case types.KindPointer:
		return TypeLayout{Size: e.Target.PtrSize, Align: e.Target.PtrAlign, Elem: tt.Elem}
	case types.KindArray:
		elem := e.LayoutOf(tt.Elem)
		count, err := safecast.Conv[int](tt.Count)
		if err != nil {
			panic(fmt.Errorf("layout: array count overflow: %w", err))
		}
		stride := alignUp(elem.Size, elem.Align)
		return TypeLayout{
			Size:  stride * count,
			Align: elem.Align,
			Elem:  tt.Elem,
			Count: count,
		}
	default:
		return TypeLayout{Size: 0, Align: 1}
	}
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + align - rem
}
