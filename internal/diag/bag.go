package diag

// Bag collects diagnostics in report order.
type Bag struct {
	diags []Diagnostic
}

// Report appends d. Bag satisfies Reporter.
func (b *Bag) Report(d Diagnostic) {
	b.diags = append(b.diags, d)
}

// Items returns the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	return b.diags
}

// Count returns the number of collected diagnostics.
func (b *Bag) Count() int {
	return len(b.diags)
}

// HasErrors reports whether any collected diagnostic is fatal.
func (b *Bag) HasErrors() bool {
	for i := range b.diags {
		if b.diags[i].Severity >= SevError {
			return true
		}
	}
	return false
}
