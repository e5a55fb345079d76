package mining

import "testing"

func TestNormalizeCollapsesRuns(t *testing.T) {
	in := "первая  строка\t\tс пробелами\r\n\n\n\nвторая строка"
	want := "первая строка с пробелами\n\nвторая строка"
	if got := Normalize(in); got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "a   b\n\n\n\nc\td\r"
	once := Normalize(in)
	if twice := Normalize(once); twice != once {
		t.Fatalf("second pass changed output: %q -> %q", once, twice)
	}
}

func TestCollapseBlankLines(t *testing.T) {
	if got := collapseBlankLines("a\n\n\nb\nc"); got != "a\nb\nc" {
		t.Fatalf("collapseBlankLines = %q", got)
	}
}
