package interpreter

import (
	"sort"
	"strconv"
	"strings"
)

// Program maps line numbers to raw statement text and keeps the ascending
// line-number sequence that drives execution order.
type Program struct {
	stmts map[int]string
	order []int
}

// ParseProgram splits source text into numbered statements. Each physical
// line must look like "<line number> <statement>"; blank lines and lines
// whose first token is not an integer are silently dropped, which lets
// freeform comment lines sit in a program file. A repeated line number
// replaces the earlier statement.
func ParseProgram(text string) *Program {
	p := &Program{stmts: make(map[int]string)}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		num, rest, ok := splitLineNumber(line)
		if !ok {
			continue
		}
		p.stmts[num] = rest
	}

	p.order = make([]int, 0, len(p.stmts))
	for num := range p.stmts {
		p.order = append(p.order, num)
	}
	sort.Ints(p.order)

	return p
}

// splitLineNumber peels the leading whitespace-delimited token off a line
// and parses it as the line number.
func splitLineNumber(line string) (int, string, bool) {
	cut := strings.IndexAny(line, " \t")
	if cut < 0 {
		return 0, "", false
	}

	num, err := strconv.Atoi(line[:cut])
	if err != nil {
		return 0, "", false
	}

	return num, strings.TrimSpace(line[cut+1:]), true
}

// Len returns the number of stored lines.
func (p *Program) Len() int {
	return len(p.order)
}

// Line returns the line number and statement at position idx of the
// ascending sequence.
func (p *Program) Line(idx int) (int, string) {
	num := p.order[idx]
	return num, p.stmts[num]
}

// IndexOf returns the position of a line number in the ascending sequence.
func (p *Program) IndexOf(line int) (int, bool) {
	idx := sort.SearchInts(p.order, line)
	if idx < len(p.order) && p.order[idx] == line {
		return idx, true
	}
	return 0, false
}

// Lines returns the ascending line-number sequence.
func (p *Program) Lines() []int {
	return p.order
}

// Stmt returns the statement text stored at a line number.
func (p *Program) Stmt(line int) string {
	return p.stmts[line]
}
