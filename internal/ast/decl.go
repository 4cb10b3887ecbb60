package ast

import (
	"mxrlang/internal/types"
)

// Decl names a typed entity. It is not a node kind of its own: statements
// that introduce bindings (Var, Fun, Module) hold one, making them both a
// statement and a named, typed declaration.
type Decl struct {
	Name string
	Type types.TypeID
}
