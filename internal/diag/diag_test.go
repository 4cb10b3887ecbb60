package diag

import (
	"bytes"
	"strings"
	"testing"

	"mxrlang/internal/source"
)

func TestBagCollectsInOrder(t *testing.T) {
	var b Bag
	b.Report(Diagnostic{Severity: SevWarning, Code: "W1", Message: "first"})
	b.Report(Diagnostic{Severity: SevNote, Code: "N1", Message: "second"})

	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	items := b.Items()
	if items[0].Message != "first" || items[1].Message != "second" {
		t.Errorf("report order not preserved: %v", items)
	}
}

func TestBagHasErrors(t *testing.T) {
	var b Bag
	b.Report(Diagnostic{Severity: SevNote})
	b.Report(Diagnostic{Severity: SevWarning})
	if b.HasErrors() {
		t.Error("HasErrors() true with only notes and warnings")
	}
	b.Report(Diagnostic{Severity: SevBug})
	if !b.HasErrors() {
		t.Error("HasErrors() false with a bug-severity diagnostic")
	}
}

func TestDiagnosticError(t *testing.T) {
	d := &Diagnostic{
		Severity: SevBug,
		Code:     CodeUndefinedBinding,
		Message:  "no binding for \"x\"",
	}
	got := d.Error()
	want := `internal compiler error[MXR-B003]: no binding for "x"`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnosticErrorWithSpan(t *testing.T) {
	d := &Diagnostic{
		Severity: SevError,
		Code:     "E1",
		Message:  "boom",
		Primary:  source.Span{File: 1, Start: 4, End: 9},
	}
	if got := d.Error(); !strings.Contains(got, "(at ") {
		t.Errorf("Error() = %q, want span suffix", got)
	}
}

func TestConsoleReporterNoColor(t *testing.T) {
	var buf bytes.Buffer
	r := &ConsoleReporter{Out: &buf, NoColor: true}
	r.Report(Diagnostic{
		Severity: SevWarning,
		Code:     "W7",
		Message:  "suspicious",
		Notes:    []Note{{Msg: "declared here"}},
	})

	out := buf.String()
	if !strings.HasPrefix(out, "warning[W7]: suspicious") {
		t.Errorf("unexpected first line: %q", out)
	}
	if !strings.Contains(out, "note: declared here") {
		t.Errorf("note missing from output: %q", out)
	}
}
