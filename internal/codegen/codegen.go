// Package codegen lowers a typed AST into an LLVM basic-block IR module.
//
// The pass trusts its input: every expression node carries a resolved type
// and every name reference resolves to a live binding. A violation of that
// contract is a bug in a compiler pass, never a user-facing error, and
// aborts lowering with a SevBug diagnostic.
package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"

	"mxrlang/internal/ast"
	"mxrlang/internal/diag"
	"mxrlang/internal/env"
	"mxrlang/internal/layout"
	"mxrlang/internal/source"
	"mxrlang/internal/types"
)

// lowerer is the single consumer of the AST. It owns the scope stack and
// the current function/block cursor; the walk is synchronous and
// depth-first, so no state here is ever shared.
type lowerer struct {
	types  *types.Interner
	layout *layout.Engine

	mod   *ir.Module
	fun   *ir.Func  // current function
	block *ir.Block // current basic block

	env *env.Env[value.Value]

	printFun *ir.Func
	scanFun  *ir.Func
	printFmt constant.Constant
	scanFmt  constant.Constant

	blockSeq int // label suffix counter, reset per function
}

// Lower converts the module tree rooted at root into an LLVM IR module
// laid out for the engine's target. The produced module is verified before
// it is returned; a verification failure is an internal error of this pass.
func Lower(root *ast.Stmt, typesIn *types.Interner, lay *layout.Engine) (*ir.Module, error) {
	if typesIn == nil {
		typesIn = types.NewInterner()
	}
	if lay == nil {
		lay = layout.New(layout.X86_64LinuxGNU(), typesIn)
	}
	l := &lowerer{
		types:  typesIn,
		layout: lay,
		mod:    ir.NewModule(),
		env:    env.New[value.Value](),
	}
	l.mod.TargetTriple = lay.Target.Triple

	if root == nil || root.Kind != ast.StmtModule {
		got := "nil"
		if root != nil {
			got = root.Kind.String()
		}
		return nil, l.ice(spanOf(root), diag.CodeBadModuleRoot, "lowering root is %s, want Module", got)
	}
	if err := l.lowerModule(root); err != nil {
		return nil, err
	}
	if err := Verify(l.mod); err != nil {
		return nil, l.ice(root.Span, diag.CodeMalformedIR, "produced IR failed verification: %v", err)
	}
	return l.mod, nil
}

// lowerModule emits the module in two passes. The first pass forward-
// declares every function and emits every global in declaration order; the
// second generates the function bodies. The split lets a body call a
// function declared later in the module: by the time any call site is
// lowered, every callee name is bound to an (possibly still empty)
// function object.
func (l *lowerer) lowerModule(stmt *ast.Stmt) error {
	data := stmt.Data.(ast.ModuleData)
	l.env.Push()
	defer l.env.Pop()

	for _, s := range data.Body {
		switch s.Kind {
		case ast.StmtFun:
			fd := s.Data.(ast.FunData)
			params := make([]*ir.Param, 0, len(fd.Params))
			for _, p := range fd.Params {
				params = append(params, ir.NewParam(p.Name, l.types.LLVM(p.Type)))
			}
			f := l.mod.NewFunc(fd.Decl.Name, l.types.LLVM(fd.Decl.Type), params...)
			l.env.Insert(fd.Decl.Name, f)
		case ast.StmtVar:
			if err := l.lowerGlobalVar(s); err != nil {
				return err
			}
		default:
			return l.ice(s.Span, diag.CodeBadModuleItem, "module body holds %s, want Fun or Var", s.Kind)
		}
	}

	for _, s := range data.Body {
		if s.Kind != ast.StmtFun {
			continue
		}
		if err := l.lowerFun(s); err != nil {
			return err
		}
	}
	return nil
}

func (l *lowerer) lowerFun(stmt *ast.Stmt) error {
	fd := stmt.Data.(ast.FunData)
	bound, ok := l.env.Find(fd.Decl.Name)
	if !ok {
		return l.ice(stmt.Span, diag.CodeUndefinedBinding, "function %q was not pre-declared", fd.Decl.Name)
	}
	f, ok := bound.(*ir.Func)
	if !ok {
		return l.ice(stmt.Span, diag.CodeNonFunctionValue, "module binding %q is not a function", fd.Decl.Name)
	}

	l.fun = f
	l.blockSeq = 0
	l.block = f.NewBlock("entry")

	l.env.Push()
	defer l.env.Pop()

	// Parameters and locals are modeled identically: a slot in the entry
	// region, read via load and written via store.
	for i, p := range fd.Params {
		slot := l.entryAlloca(p.Type, p.Name)
		l.block.NewStore(f.Params[i], slot)
		l.env.Insert(p.Name, slot)
	}

	if err := l.lowerBody(fd.Body); err != nil {
		return err
	}

	// Implicit fallthrough: on valid input an open final block either
	// belongs to a void function or is unreachable.
	if l.block.Term == nil {
		if tt, ok := l.types.Lookup(fd.Decl.Type); ok && tt.Kind == types.KindNone {
			l.block.NewRet(nil)
		} else {
			l.block.NewUnreachable()
		}
	}
	return nil
}

// lowerGlobalVar emits static storage for a module-level variable. The
// storage is module-private, aligned per the target layout, and its
// initializer must lower to a compile-time constant.
func (l *lowerer) lowerGlobalVar(stmt *ast.Stmt) error {
	vd := stmt.Data.(ast.VarStmtData)
	g := l.mod.NewGlobal(vd.Decl.Name, l.types.LLVM(vd.Decl.Type))
	g.Linkage = enum.LinkagePrivate
	g.Align = ir.Align(l.layout.AlignOf(vd.Decl.Type))
	l.env.Insert(vd.Decl.Name, g)

	if vd.Init == nil {
		g.Init = constant.NewZeroInitializer(l.types.LLVM(vd.Decl.Type))
		return nil
	}
	v, err := l.lowerExpr(vd.Init)
	if err != nil {
		return err
	}
	c, ok := v.(constant.Constant)
	if !ok {
		return l.ice(vd.Init.Span, diag.CodeNonConstantInit,
			"global %q initializer is not a compile-time constant", vd.Decl.Name)
	}
	g.Init = c
	return nil
}

// entryAlloca allocates a slot in the current function's entry region,
// sized to the given type.
func (l *lowerer) entryAlloca(ty types.TypeID, name string) *ir.InstAlloca {
	slot := ir.NewAlloca(l.types.LLVM(ty))
	slot.SetName(name)
	entry := l.fun.Blocks[0]
	entry.Insts = append(entry.Insts, slot)
	return slot
}

// appendBlock attaches a detached block to the current function's block
// list. Merge and else blocks are created detached and attached lazily so
// the list order reflects emission order.
func (l *lowerer) appendBlock(b *ir.Block) {
	b.Parent = l.fun
	l.fun.Blocks = append(l.fun.Blocks, b)
}

// branchTo terminates the current block with an unconditional branch
// unless it already has a terminator.
func (l *lowerer) branchTo(target *ir.Block) {
	if l.block.Term == nil {
		l.block.NewBr(target)
	}
}

func (l *lowerer) nextSeq() int {
	l.blockSeq++
	return l.blockSeq
}

func blockName(base string, seq int) string {
	return fmt.Sprintf("%s.%d", base, seq)
}

func spanOf(s *ast.Stmt) source.Span {
	if s == nil {
		return source.Span{}
	}
	return s.Span
}
