package codegen

import (
	"errors"
	"fmt"

	"github.com/llir/llvm/ir"
)

// Verify checks the structural contract of a lowered module: every basic
// block has exactly one terminator, every branch target belongs to the
// same function, and every block is reachable from its function's entry
// block. Functions without a body are external declarations and are
// skipped.
func Verify(m *ir.Module) error {
	if m == nil {
		return nil
	}
	var errs []error
	for _, f := range m.Funcs {
		if len(f.Blocks) == 0 {
			continue
		}
		if err := verifyFunc(f); err != nil {
			errs = append(errs, fmt.Errorf("function %s: %w", f.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func verifyFunc(f *ir.Func) error {
	var errs []error

	index := make(map[*ir.Block]int, len(f.Blocks))
	for i, b := range f.Blocks {
		index[b] = i
	}

	for i, b := range f.Blocks {
		if b.Term == nil {
			errs = append(errs, fmt.Errorf("block %d (%s): no terminator", i, b.Name()))
			continue
		}
		for _, succ := range b.Term.Succs() {
			if _, ok := index[succ]; !ok {
				errs = append(errs, fmt.Errorf("block %d (%s): successor %s belongs to another function",
					i, b.Name(), succ.Name()))
			}
		}
	}

	reached := make(map[*ir.Block]bool, len(f.Blocks))
	work := []*ir.Block{f.Blocks[0]}
	reached[f.Blocks[0]] = true
	for len(work) > 0 {
		b := work[len(work)-1]
		work = work[:len(work)-1]
		if b.Term == nil {
			continue
		}
		for _, succ := range b.Term.Succs() {
			if !reached[succ] {
				reached[succ] = true
				work = append(work, succ)
			}
		}
	}
	for i, b := range f.Blocks {
		if !reached[b] {
			errs = append(errs, fmt.Errorf("block %d (%s): unreachable from entry", i, b.Name()))
		}
	}

	return errors.Join(errs...)
}
