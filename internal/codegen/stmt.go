package codegen

import (
	"github.com/llir/llvm/ir"

	"mxrlang/internal/ast"
	"mxrlang/internal/diag"
)

// lowerBody lowers statements in order, stopping once the current block is
// terminated: statements after a return cannot extend a finished block.
func (l *lowerer) lowerBody(body []*ast.Stmt) error {
	for _, s := range body {
		if l.block.Term != nil {
			return nil
		}
		if err := l.lowerStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (l *lowerer) lowerStmt(stmt *ast.Stmt) error {
	switch stmt.Kind {
	case ast.StmtExpr:
		_, err := l.lowerExpr(stmt.Data.(ast.ExprStmtData).Expr)
		return err
	case ast.StmtVar:
		return l.lowerLocalVar(stmt)
	case ast.StmtIf:
		return l.lowerIf(stmt)
	case ast.StmtWhile:
		return l.lowerWhile(stmt)
	case ast.StmtReturn:
		return l.lowerReturn(stmt)
	case ast.StmtPrint:
		return l.lowerPrint(stmt)
	case ast.StmtScan:
		return l.lowerScan(stmt)
	default:
		return l.ice(stmt.Span, diag.CodeBadModuleItem,
			"%s statement inside a function body", stmt.Kind)
	}
}

// lowerLocalVar allocates a stack slot in the entry region and runs the
// initializer. Init and ArrayInit are mutually exclusive: the latter is
// the per-element assignment list the upstream pass lowered an array
// initializer into, and is replayed as ordinary expressions.
func (l *lowerer) lowerLocalVar(stmt *ast.Stmt) error {
	vd := stmt.Data.(ast.VarStmtData)
	slot := l.entryAlloca(vd.Decl.Type, vd.Decl.Name)
	l.env.Insert(vd.Decl.Name, slot)

	switch {
	case vd.Init != nil:
		v, err := l.lowerExpr(vd.Init)
		if err != nil {
			return err
		}
		l.block.NewStore(v, slot)
	case len(vd.ArrayInit) > 0:
		for _, e := range vd.ArrayInit {
			if _, err := l.lowerExpr(e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *lowerer) lowerIf(stmt *ast.Stmt) error {
	d := stmt.Data.(ast.IfData)
	cond, err := l.lowerExpr(d.Cond)
	if err != nil {
		return err
	}

	// Without an else body the else target IS the merge block, so no empty
	// block is emitted. A dedicated else block is created detached and
	// attached only after the then body exists.
	seq := l.nextSeq()
	thenBB := l.fun.NewBlock(blockName("then", seq))
	mergeBB := ir.NewBlock(blockName("merge", seq))
	hasElse := len(d.Else) > 0
	elseBB := mergeBB
	if hasElse {
		elseBB = ir.NewBlock(blockName("else", seq))
	}
	l.block.NewCondBr(cond, thenBB, elseBB)
	mergeReached := !hasElse // the false edge targets merge directly

	l.block = thenBB
	l.env.Push()
	err = l.lowerBody(d.Then)
	l.env.Pop()
	if err != nil {
		return err
	}
	if l.block.Term == nil {
		l.block.NewBr(mergeBB)
		mergeReached = true
	}

	if hasElse {
		l.appendBlock(elseBB)
		l.block = elseBB
		l.env.Push()
		err = l.lowerBody(d.Else)
		l.env.Pop()
		if err != nil {
			return err
		}
		if l.block.Term == nil {
			l.block.NewBr(mergeBB)
			mergeReached = true
		}
	}

	// When every branch returned, nothing can reach the merge block; leave
	// it out of the function instead of emitting a dead block. The current
	// block stays terminated, so any trailing statements are dead.
	if !mergeReached {
		return nil
	}
	l.appendBlock(mergeBB)
	l.block = mergeBB
	return nil
}

func (l *lowerer) lowerWhile(stmt *ast.Stmt) error {
	d := stmt.Data.(ast.WhileData)

	seq := l.nextSeq()
	condBB := l.fun.NewBlock(blockName("cond", seq))
	bodyBB := ir.NewBlock(blockName("body", seq))
	mergeBB := ir.NewBlock(blockName("merge", seq))

	// The current block needs a terminator before the loop structure is
	// reachable; fall into the condition block unconditionally. Every loop
	// iteration returns here.
	l.branchTo(condBB)

	l.block = condBB
	cond, err := l.lowerExpr(d.Cond)
	if err != nil {
		return err
	}
	l.block.NewCondBr(cond, bodyBB, mergeBB)

	l.appendBlock(bodyBB)
	l.block = bodyBB
	l.env.Push()
	err = l.lowerBody(d.Body)
	l.env.Pop()
	if err != nil {
		return err
	}
	l.branchTo(condBB)

	l.appendBlock(mergeBB)
	l.block = mergeBB
	return nil
}

func (l *lowerer) lowerReturn(stmt *ast.Stmt) error {
	d := stmt.Data.(ast.ReturnData)
	if d.Expr == nil {
		l.block.NewRet(nil)
		return nil
	}
	v, err := l.lowerExpr(d.Expr)
	if err != nil {
		return err
	}
	l.block.NewRet(v)
	return nil
}

func (l *lowerer) lowerPrint(stmt *ast.Stmt) error {
	d := stmt.Data.(ast.PrintData)
	v, err := l.lowerExpr(d.Expr)
	if err != nil {
		return err
	}
	fn, format := l.printf()
	l.block.NewCall(fn, format, v)
	return nil
}

// lowerScan passes the scanned variable's address so the external reader
// can write through it.
func (l *lowerer) lowerScan(stmt *ast.Stmt) error {
	d := stmt.Data.(ast.ScanData)
	addr, err := l.lowerExpr(d.Target)
	if err != nil {
		return err
	}
	fn, format := l.scanf()
	l.block.NewCall(fn, format, addr)
	return nil
}
