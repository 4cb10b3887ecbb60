package ast

import (
	"math/big"

	"mxrlang/internal/source"
	"mxrlang/internal/types"
)

// ExprKind enumerates expression kinds.
type ExprKind uint8

const (
	// ExprAssign represents an assignment (dest = source).
	ExprAssign ExprKind = iota
	// ExprArrayAccess represents indexing (array[index]).
	ExprArrayAccess
	// ExprArrayInit represents an array initializer list.
	ExprArrayInit
	// ExprBinaryArith represents arithmetic binary operators (+, -, *, /).
	ExprBinaryArith
	// ExprBinaryLogical represents logical and comparison operators.
	ExprBinaryLogical
	// ExprBoolLit represents a boolean literal.
	ExprBoolLit
	// ExprCall represents a function call.
	ExprCall
	// ExprIntLit represents an integer literal.
	ExprIntLit
	// ExprLoad represents an rvalue read of an addressable expression,
	// inserted by the upstream semantic pass.
	ExprLoad
	// ExprPointerOp represents address-of and dereference.
	ExprPointerOp
	// ExprUnary represents unary operators (arithmetic and logical negation).
	ExprUnary
	// ExprVar represents a variable reference.
	ExprVar
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprAssign:
		return "Assign"
	case ExprArrayAccess:
		return "ArrayAccess"
	case ExprArrayInit:
		return "ArrayInit"
	case ExprBinaryArith:
		return "BinaryArith"
	case ExprBinaryLogical:
		return "BinaryLogical"
	case ExprBoolLit:
		return "BoolLit"
	case ExprCall:
		return "Call"
	case ExprIntLit:
		return "IntLit"
	case ExprLoad:
		return "Load"
	case ExprPointerOp:
		return "PointerOp"
	case ExprUnary:
		return "Unary"
	case ExprVar:
		return "Var"
	default:
		return "Unknown"
	}
}

// Expr represents an expression node. The kind tag and span are set at
// construction; the type slot is filled by the upstream semantic pass and
// is non-null for every node that reaches lowering.
type Expr struct {
	Kind ExprKind
	Span source.Span
	Type types.TypeID
	Data ExprData // kind-specific payload
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// AssignData holds data for ExprAssign.
type AssignData struct {
	Dest   *Expr
	Source *Expr
}

func (AssignData) exprData() {}

// ArrayAccessData holds data for ExprArrayAccess.
type ArrayAccessData struct {
	Array *Expr
	Index *Expr
}

func (ArrayAccessData) exprData() {}

// ArrayInitData holds data for ExprArrayInit.
type ArrayInitData struct {
	Elems []*Expr
}

func (ArrayInitData) exprData() {}

// BinaryArithOp enumerates arithmetic binary operators.
type BinaryArithOp uint8

const (
	OpAdd BinaryArithOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryArithOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// BinaryArithData holds data for ExprBinaryArith.
type BinaryArithData struct {
	Op    BinaryArithOp
	Left  *Expr
	Right *Expr
}

func (BinaryArithData) exprData() {}

// BinaryLogicalOp enumerates logical and comparison operators.
type BinaryLogicalOp uint8

const (
	OpAnd BinaryLogicalOp = iota
	OpOr
	OpEq
	OpNotEq
	OpGreater
	OpGreaterEq
	OpLess
	OpLessEq
)

func (op BinaryLogicalOp) String() string {
	switch op {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	default:
		return "?"
	}
}

// BinaryLogicalData holds data for ExprBinaryLogical.
type BinaryLogicalData struct {
	Op    BinaryLogicalOp
	Left  *Expr
	Right *Expr
}

func (BinaryLogicalData) exprData() {}

// BoolLitData holds data for ExprBoolLit.
type BoolLitData struct {
	Value bool
}

func (BoolLitData) exprData() {}

// CallData holds data for ExprCall.
type CallData struct {
	Name string
	Args []*Expr
}

func (CallData) exprData() {}

// IntLitData holds data for ExprIntLit. The value is arbitrary precision;
// the target representation narrows it to the machine integer.
type IntLitData struct {
	Value *big.Int
}

func (IntLitData) exprData() {}

// LoadData holds data for ExprLoad.
type LoadData struct {
	Expr *Expr
}

func (LoadData) exprData() {}

// PointerOp enumerates pointer operations.
type PointerOp uint8

const (
	PtrAddressOf PointerOp = iota
	PtrDeref
)

func (op PointerOp) String() string {
	switch op {
	case PtrAddressOf:
		return "&"
	case PtrDeref:
		return "^"
	default:
		return "?"
	}
}

// PointerOpData holds data for ExprPointerOp.
type PointerOpData struct {
	Op   PointerOp
	Expr *Expr
}

func (PointerOpData) exprData() {}

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	OpNegArith UnaryOp = iota
	OpNegLogic
)

func (op UnaryOp) String() string {
	switch op {
	case OpNegArith:
		return "-"
	case OpNegLogic:
		return "!"
	default:
		return "?"
	}
}

// UnaryData holds data for ExprUnary.
type UnaryData struct {
	Op   UnaryOp
	Expr *Expr
}

func (UnaryData) exprData() {}

// VarData holds data for ExprVar.
type VarData struct {
	Name string
}

func (VarData) exprData() {}

// MakeAssign attempts to reinterpret e as the destination of an assignment,
// wrapping it in an Assign node that owns both operands. Only addressable
// expressions qualify; for every other kind the result is nil, which the
// parser treats as "not a valid assignment target".
func (e *Expr) MakeAssign(source *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ExprVar, ExprArrayAccess:
	case ExprPointerOp:
		if e.Data.(PointerOpData).Op != PtrDeref {
			return nil
		}
	default:
		return nil
	}
	return &Expr{
		Kind: ExprAssign,
		Span: e.Span,
		Data: AssignData{Dest: e, Source: source},
	}
}
