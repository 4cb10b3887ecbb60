package ast

import (
	"mxrlang/internal/source"
)

// StmtKind enumerates statement kinds.
type StmtKind uint8

const (
	// StmtExpr represents an expression statement.
	StmtExpr StmtKind = iota
	// StmtFun represents a function definition.
	StmtFun
	// StmtIf represents an if statement.
	StmtIf
	// StmtModule represents a module; exactly one roots a program.
	StmtModule
	// StmtPrint represents a print statement.
	StmtPrint
	// StmtReturn represents a return statement.
	StmtReturn
	// StmtScan represents a scan statement.
	StmtScan
	// StmtVar represents a variable declaration.
	StmtVar
	// StmtWhile represents a while loop.
	StmtWhile
)

// String returns a human-readable name for the statement kind.
func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "Expr"
	case StmtFun:
		return "Fun"
	case StmtIf:
		return "If"
	case StmtModule:
		return "Module"
	case StmtPrint:
		return "Print"
	case StmtReturn:
		return "Return"
	case StmtScan:
		return "Scan"
	case StmtVar:
		return "Var"
	case StmtWhile:
		return "While"
	default:
		return "Unknown"
	}
}

// Stmt represents a statement node.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData // kind-specific payload
}

// StmtData is the interface for statement-specific data.
type StmtData interface {
	stmtData()
}

// ExprStmtData holds data for StmtExpr.
type ExprStmtData struct {
	Expr *Expr
}

func (ExprStmtData) stmtData() {}

// FunData holds data for StmtFun. Decl carries the function name and
// return type.
type FunData struct {
	Decl   Decl
	Params []Decl
	Body   []*Stmt
}

func (FunData) stmtData() {}

// IfData holds data for StmtIf. Else is empty when there is no else branch.
type IfData struct {
	Cond *Expr
	Then []*Stmt
	Else []*Stmt
}

func (IfData) stmtData() {}

// ModuleData holds data for StmtModule. The body holds only Fun and Var
// statements in the currently supported program shape.
type ModuleData struct {
	Decl Decl
	Body []*Stmt
}

func (ModuleData) stmtData() {}

// PrintData holds data for StmtPrint.
type PrintData struct {
	Expr *Expr
}

func (PrintData) stmtData() {}

// ReturnData holds data for StmtReturn.
type ReturnData struct {
	Expr *Expr
}

func (ReturnData) stmtData() {}

// ScanData holds data for StmtScan. Target is a Var expression naming the
// slot the external reader writes through.
type ScanData struct {
	Target *Expr
}

func (ScanData) stmtData() {}

// VarStmtData holds data for StmtVar. Init and ArrayInit are mutually
// exclusive: ArrayInit is the per-element assignment list the upstream
// semantic pass produces for local array initializers.
type VarStmtData struct {
	Decl      Decl
	Init      *Expr
	ArrayInit []*Expr
}

func (VarStmtData) stmtData() {}

// WhileData holds data for StmtWhile.
type WhileData struct {
	Cond *Expr
	Body []*Stmt
}

func (WhileData) stmtData() {}
