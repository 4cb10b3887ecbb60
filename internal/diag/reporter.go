package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter renders or records diagnostics. The compiler stages only build
// Diagnostic values; rendering policy belongs to the reporter owner.
type Reporter interface {
	Report(d Diagnostic)
}

// ConsoleReporter writes human-readable diagnostics to a stream, coloring
// the severity tag when the stream supports it.
type ConsoleReporter struct {
	Out     io.Writer
	NoColor bool
}

func (r *ConsoleReporter) Report(d Diagnostic) {
	tag := d.Severity.String()
	if !r.NoColor {
		tag = severityColor(d.Severity).Sprint(tag)
	}
	if d.Primary.Empty() && d.Primary.File == 0 {
		fmt.Fprintf(r.Out, "%s[%s]: %s\n", tag, d.Code, d.Message)
	} else {
		fmt.Fprintf(r.Out, "%s[%s]: %s (at %s)\n", tag, d.Code, d.Message, d.Primary)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(r.Out, "  note: %s (at %s)\n", n.Msg, n.Span)
	}
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevNote:
		return color.New(color.FgCyan)
	case SevWarning:
		return color.New(color.FgYellow)
	case SevError:
		return color.New(color.FgRed, color.Bold)
	case SevBug:
		return color.New(color.FgMagenta, color.Bold)
	default:
		return color.New()
	}
}
