package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevNote is supplementary information attached to another diagnostic.
	SevNote Severity = iota
	// SevWarning reports a suspicious but valid construct.
	SevWarning
	// SevError reports invalid input detected by the upstream passes.
	SevError
	// SevBug reports a broken invariant between compiler passes. It is
	// always fatal and never attributable to user input.
	SevBug
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevBug:
		return "internal compiler error"
	default:
		return "unknown"
	}
}
