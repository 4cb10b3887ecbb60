package codegen

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	irtypes "github.com/llir/llvm/ir/types"
)

// Print and scan lower to calls of the C formatting routines. The externs
// and their format strings are created lazily, once per module, with a
// fixed format per supported type.

func (l *lowerer) printf() (*ir.Func, constant.Constant) {
	if l.printFun == nil {
		l.printFun = l.declareFormatted("printf")
		l.printFmt = l.formatString("print.fmt", "%lld\n")
	}
	return l.printFun, l.printFmt
}

func (l *lowerer) scanf() (*ir.Func, constant.Constant) {
	if l.scanFun == nil {
		l.scanFun = l.declareFormatted("__isoc99_scanf")
		l.scanFmt = l.formatString("scan.fmt", "%lld")
	}
	return l.scanFun, l.scanFmt
}

// declareFormatted declares a variadic i32(i8*, ...) extern.
func (l *lowerer) declareFormatted(name string) *ir.Func {
	f := l.mod.NewFunc(name, irtypes.I32, ir.NewParam("", irtypes.NewPointer(irtypes.I8)))
	f.Sig.Variadic = true
	return f
}

// formatString emits a private NUL-terminated string global and returns a
// constant pointer to its first character.
func (l *lowerer) formatString(name, text string) constant.Constant {
	arr := constant.NewCharArrayFromString(text + "\x00")
	g := l.mod.NewGlobalDef(name, arr)
	g.Linkage = enum.LinkagePrivate
	zero := constant.NewInt(irtypes.I64, 0)
	return constant.NewGetElementPtr(arr.Typ, g, zero, zero)
}
