package diag

import (
	"fmt"

	"mxrlang/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reportable condition with a primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Error makes a Diagnostic usable as an error value, which is how the
// lowering pass surfaces internal-contract violations to its caller.
func (d *Diagnostic) Error() string {
	if d.Primary.Empty() && d.Primary.File == source.NoFileID {
		return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s (at %s)", d.Severity, d.Code, d.Message, d.Primary)
}
