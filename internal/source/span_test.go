package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 9}
	if s.Empty() {
		t.Error("non-empty span reported empty")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if (Span{File: 1, Start: 7, End: 7}).Empty() != true {
		t.Error("zero-length span not empty")
	}
	if got := s.String(); got != "1:4-9" {
		t.Errorf("String() = %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 9}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 9 {
		t.Errorf("Cover = %v, want 1:2-9", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover = %v, want unchanged", got)
	}
}
