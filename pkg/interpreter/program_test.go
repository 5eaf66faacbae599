package interpreter

import (
	"reflect"
	"testing"
)

func TestParseProgram(t *testing.T) {
	text := `
20 PRINT "b"

this line is freeform garbage
10 PRINT "a"
NOTANUMBER PRINT "x"
30 PRINT "c"
30 PRINT "replaced"
40
`
	p := ParseProgram(text)

	if want := []int{10, 20, 30}; !reflect.DeepEqual(p.Lines(), want) {
		t.Errorf("expected lines %v, got %v", want, p.Lines())
	}

	if got := p.Stmt(30); got != `PRINT "replaced"` {
		t.Errorf("later definition should replace the earlier one, got %q", got)
	}

	if got := p.Stmt(10); got != `PRINT "a"` {
		t.Errorf("expected statement text, got %q", got)
	}
}

func TestParseProgramShapes(t *testing.T) {
	tests := []struct {
		input       string
		lines       int
		description string
	}{
		{"", 0, "empty text"},
		{"\n\n\n", 0, "blank lines only"},
		{"hello world", 0, "no line number"},
		{"10", 0, "line number without statement"},
		{"10 PRINT", 1, "single line"},
		{"10\tPRINT \"x\"", 1, "tab after the line number"},
		{"  10 PRINT \"x\"  ", 1, "surrounding whitespace trimmed"},
	}

	for _, test := range tests {
		p := ParseProgram(test.input)
		if p.Len() != test.lines {
			t.Errorf("%s: expected %d lines, got %d", test.description, test.lines, p.Len())
		}
	}
}

func TestProgramIndexOf(t *testing.T) {
	p := ParseProgram("10 A\n20 B\n30 C")

	idx, ok := p.IndexOf(20)
	if !ok || idx != 1 {
		t.Errorf("expected index 1 for line 20, got %d (%v)", idx, ok)
	}

	if _, ok := p.IndexOf(25); ok {
		t.Error("absent line number should not resolve")
	}
}
