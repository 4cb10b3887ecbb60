package codegen

import (
	"fmt"

	"mxrlang/internal/diag"
	"mxrlang/internal/source"
)

// ice builds the error for an internal-contract violation: a SevBug
// diagnostic naming the broken invariant, wrapped so callers can unwrap
// the Diagnostic with errors.As. Lowering never recovers from these.
func (l *lowerer) ice(span source.Span, code diag.Code, format string, args ...any) error {
	return fmt.Errorf("codegen: %w", &diag.Diagnostic{
		Severity: diag.SevBug,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Primary:  span,
	})
}
