package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"mxrlang/internal/ast"
	"mxrlang/internal/diag"
	"mxrlang/internal/source"
	"mxrlang/internal/types"
)

// lowerExpr lowers one expression and returns the value it computes.
// Addressable expressions (variable references, array accesses, pointer
// dereferences) yield an address; consumers wrap them in Load to read the
// value. Operands are always lowered left to right.
func (l *lowerer) lowerExpr(e *ast.Expr) (value.Value, error) {
	if e == nil {
		return nil, l.ice(source.Span{}, diag.CodeUntypedExpr, "nil expression node")
	}

	switch e.Kind {
	case ast.ExprAssign, ast.ExprArrayAccess, ast.ExprBinaryArith,
		ast.ExprBinaryLogical, ast.ExprCall, ast.ExprLoad, ast.ExprUnary:
		if l.block == nil {
			return nil, l.ice(e.Span, diag.CodeNonConstantInit,
				"%s expression outside a function body", e.Kind)
		}
	}

	switch e.Kind {
	case ast.ExprAssign:
		d := e.Data.(ast.AssignData)
		// Evaluation order is a fixed contract: source first, then the
		// destination address.
		src, err := l.lowerExpr(d.Source)
		if err != nil {
			return nil, err
		}
		dst, err := l.lowerExpr(d.Dest)
		if err != nil {
			return nil, err
		}
		l.block.NewStore(src, dst)
		return src, nil

	case ast.ExprArrayAccess:
		return l.lowerArrayAccess(e)

	case ast.ExprArrayInit:
		return l.lowerArrayInit(e)

	case ast.ExprBinaryArith:
		d := e.Data.(ast.BinaryArithData)
		left, err := l.lowerExpr(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.lowerExpr(d.Right)
		if err != nil {
			return nil, err
		}
		switch d.Op {
		case ast.OpAdd:
			return l.block.NewAdd(left, right), nil
		case ast.OpSub:
			return l.block.NewSub(left, right), nil
		case ast.OpMul:
			return l.block.NewMul(left, right), nil
		case ast.OpDiv:
			return l.block.NewSDiv(left, right), nil
		default:
			return nil, l.ice(e.Span, diag.CodeUntypedExpr, "unhandled arithmetic operator %s", d.Op)
		}

	case ast.ExprBinaryLogical:
		d := e.Data.(ast.BinaryLogicalData)
		left, err := l.lowerExpr(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.lowerExpr(d.Right)
		if err != nil {
			return nil, err
		}
		switch d.Op {
		case ast.OpAnd:
			return l.block.NewAnd(left, right), nil
		case ast.OpOr:
			return l.block.NewOr(left, right), nil
		case ast.OpEq:
			return l.block.NewICmp(enum.IPredEQ, left, right), nil
		case ast.OpNotEq:
			return l.block.NewICmp(enum.IPredNE, left, right), nil
		case ast.OpGreater:
			return l.block.NewICmp(enum.IPredSGT, left, right), nil
		case ast.OpGreaterEq:
			return l.block.NewICmp(enum.IPredSGE, left, right), nil
		case ast.OpLess:
			return l.block.NewICmp(enum.IPredSLT, left, right), nil
		case ast.OpLessEq:
			return l.block.NewICmp(enum.IPredSLE, left, right), nil
		default:
			return nil, l.ice(e.Span, diag.CodeUntypedExpr, "unhandled logical operator %s", d.Op)
		}

	case ast.ExprBoolLit:
		if e.Data.(ast.BoolLitData).Value {
			return constant.True, nil
		}
		return constant.False, nil

	case ast.ExprCall:
		return l.lowerCall(e)

	case ast.ExprIntLit:
		d := e.Data.(ast.IntLitData)
		if d.Value == nil {
			return nil, l.ice(e.Span, diag.CodeUntypedExpr, "integer literal without a value")
		}
		return &constant.Int{Typ: irtypes.I64, X: d.Value}, nil

	case ast.ExprLoad:
		return l.lowerLoad(e)

	case ast.ExprPointerOp:
		return l.lowerPointerOp(e)

	case ast.ExprUnary:
		d := e.Data.(ast.UnaryData)
		v, err := l.lowerExpr(d.Expr)
		if err != nil {
			return nil, err
		}
		switch d.Op {
		case ast.OpNegArith:
			return l.block.NewSub(constant.NewInt(irtypes.I64, 0), v), nil
		case ast.OpNegLogic:
			return l.block.NewXor(v, constant.True), nil
		default:
			return nil, l.ice(e.Span, diag.CodeUntypedExpr, "unhandled unary operator %s", d.Op)
		}

	case ast.ExprVar:
		d := e.Data.(ast.VarData)
		v, ok := l.env.Find(d.Name)
		if !ok {
			return nil, l.ice(e.Span, diag.CodeUndefinedBinding,
				"no binding for %q in any live scope", d.Name)
		}
		// A variable reference yields the slot's address, not its value.
		return v, nil

	default:
		return nil, l.ice(e.Span, diag.CodeUntypedExpr, "unhandled expression kind %s", e.Kind)
	}
}

// lowerLoad reads the value behind an addressable expression. If the
// address holds an array, no memory is read: arrays are never used by
// value, so the load decays to the address of the first element.
func (l *lowerer) lowerLoad(e *ast.Expr) (value.Value, error) {
	d := e.Data.(ast.LoadData)
	addr, err := l.lowerExpr(d.Expr)
	if err != nil {
		return nil, err
	}
	inner, ok := l.types.Lookup(d.Expr.Type)
	if !ok {
		return nil, l.ice(d.Expr.Span, diag.CodeUntypedExpr, "load operand has no resolved type")
	}
	if inner.Kind == types.KindArray {
		zero := constant.NewInt(irtypes.I64, 0)
		return l.block.NewGetElementPtr(l.types.LLVM(d.Expr.Type), addr, zero, zero), nil
	}
	return l.block.NewLoad(l.types.LLVM(d.Expr.Type), addr), nil
}

// lowerArrayAccess computes the address of array[index]. The addressing is
// type-directed with no fallback: an array operand is the address of the
// whole aggregate and takes a two-level index (step through the aggregate
// pointer, then select the element); a pointer operand is read from memory
// first and indexed one level from the loaded value.
func (l *lowerer) lowerArrayAccess(e *ast.Expr) (value.Value, error) {
	d := e.Data.(ast.ArrayAccessData)
	arr, err := l.lowerExpr(d.Array)
	if err != nil {
		return nil, err
	}
	idx, err := l.lowerExpr(d.Index)
	if err != nil {
		return nil, err
	}
	att, ok := l.types.Lookup(d.Array.Type)
	if !ok {
		return nil, l.ice(d.Array.Span, diag.CodeUntypedExpr, "indexed operand has no resolved type")
	}
	switch att.Kind {
	case types.KindArray:
		zero := constant.NewInt(irtypes.I64, 0)
		gep := l.block.NewGetElementPtr(l.types.LLVM(d.Array.Type), arr, zero, idx)
		gep.InBounds = true
		return gep, nil
	case types.KindPointer:
		ptr := l.block.NewLoad(l.types.LLVM(d.Array.Type), arr)
		return l.block.NewGetElementPtr(l.types.LLVM(att.Elem), ptr, idx), nil
	default:
		return nil, l.ice(e.Span, diag.CodeBadIndexOperand,
			"indexed operand has type %s, want array or pointer", l.types.String(d.Array.Type))
	}
}

func (l *lowerer) lowerPointerOp(e *ast.Expr) (value.Value, error) {
	d := e.Data.(ast.PointerOpData)
	switch d.Op {
	case ast.PtrAddressOf:
		// Addressable expressions already evaluate to an address; nothing
		// to emit.
		return l.lowerExpr(d.Expr)
	case ast.PtrDeref:
		if l.block == nil {
			return nil, l.ice(e.Span, diag.CodeNonConstantInit,
				"dereference outside a function body")
		}
		v, err := l.lowerExpr(d.Expr)
		if err != nil {
			return nil, err
		}
		pt, ok := l.types.Lookup(d.Expr.Type)
		if !ok || pt.Kind != types.KindPointer {
			return nil, l.ice(e.Span, diag.CodeBadDerefOperand,
				"dereferenced operand has type %s, want pointer", l.types.String(d.Expr.Type))
		}
		// Read the pointer value; it is the pointee's address, which is
		// what a dereference yields as an addressable expression.
		return l.block.NewLoad(l.types.LLVM(d.Expr.Type), v), nil
	default:
		return nil, l.ice(e.Span, diag.CodeUntypedExpr, "unhandled pointer operation %s", d.Op)
	}
}

func (l *lowerer) lowerCall(e *ast.Expr) (value.Value, error) {
	d := e.Data.(ast.CallData)
	bound, ok := l.env.Find(d.Name)
	if !ok {
		return nil, l.ice(e.Span, diag.CodeUndefinedBinding, "no binding for callee %q", d.Name)
	}
	callee, ok := bound.(*ir.Func)
	if !ok {
		return nil, l.ice(e.Span, diag.CodeNonFunctionValue,
			"callee %q is not bound to a function", d.Name)
	}
	args := make([]value.Value, 0, len(d.Args))
	for _, a := range d.Args {
		v, err := l.lowerExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return l.block.NewCall(callee, args...), nil
}

// lowerArrayInit builds an aggregate constant; every element must itself
// lower to a compile-time constant.
func (l *lowerer) lowerArrayInit(e *ast.Expr) (value.Value, error) {
	at, ok := l.types.LLVM(e.Type).(*irtypes.ArrayType)
	if !ok {
		return nil, l.ice(e.Span, diag.CodeUntypedExpr,
			"array initializer has type %s, want array", l.types.String(e.Type))
	}
	d := e.Data.(ast.ArrayInitData)
	elems := make([]constant.Constant, 0, len(d.Elems))
	for _, el := range d.Elems {
		v, err := l.lowerExpr(el)
		if err != nil {
			return nil, err
		}
		c, ok := v.(constant.Constant)
		if !ok {
			return nil, l.ice(el.Span, diag.CodeNonConstantInit,
				"array initializer element is not a compile-time constant")
		}
		elems = append(elems, c)
	}
	return constant.NewArray(at, elems...), nil
}
