package ast

import (
	"math/big"
	"testing"
)

func TestMakeAssignAddressable(t *testing.T) {
	src := &Expr{Kind: ExprIntLit, Data: IntLitData{Value: big.NewInt(1)}}

	tests := []struct {
		name string
		dest *Expr
		ok   bool
	}{
		{"var", &Expr{Kind: ExprVar, Data: VarData{Name: "x"}}, true},
		{"array_access", &Expr{Kind: ExprArrayAccess, Data: ArrayAccessData{}}, true},
		{"deref", &Expr{Kind: ExprPointerOp, Data: PointerOpData{Op: PtrDeref}}, true},
		{"address_of", &Expr{Kind: ExprPointerOp, Data: PointerOpData{Op: PtrAddressOf}}, false},
		{"int_literal", &Expr{Kind: ExprIntLit, Data: IntLitData{Value: big.NewInt(2)}}, false},
		{"bool_literal", &Expr{Kind: ExprBoolLit, Data: BoolLitData{Value: true}}, false},
		{"call", &Expr{Kind: ExprCall, Data: CallData{Name: "f"}}, false},
		{"binary", &Expr{Kind: ExprBinaryArith, Data: BinaryArithData{Op: OpAdd}}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dest.MakeAssign(src)
			if (got != nil) != tt.ok {
				t.Fatalf("MakeAssign on %s: got %v, want ok=%v", tt.name, got, tt.ok)
			}
			if got == nil {
				return
			}
			if got.Kind != ExprAssign {
				t.Errorf("result kind = %s, want Assign", got.Kind)
			}
			d := got.Data.(AssignData)
			if d.Dest != tt.dest || d.Source != src {
				t.Error("assign node does not own both operands")
			}
		})
	}
}

func TestExprKindString(t *testing.T) {
	if got := ExprArrayAccess.String(); got != "ArrayAccess" {
		t.Errorf("ExprArrayAccess.String() = %q", got)
	}
	if got := ExprKind(200).String(); got != "Unknown" {
		t.Errorf("out-of-range kind String() = %q", got)
	}
}

func TestStmtKindString(t *testing.T) {
	if got := StmtModule.String(); got != "Module" {
		t.Errorf("StmtModule.String() = %q", got)
	}
	if got := StmtKind(200).String(); got != "Unknown" {
		t.Errorf("out-of-range kind String() = %q", got)
	}
}
