package interpreter

import (
	"bufio"
	"io"
	"os"
)

// Interpreter executes a line-numbered BASIC program. All mutable state
// (program, variables, counter, control stack) belongs to one instance, so
// independent interpreters can run side by side.
type Interpreter struct {
	program *Program
	vars    map[string]Value

	// pc indexes the ascending line-number sequence, not a line number.
	pc int

	stack []Frame // control stack: FOR loops and GOSUB calls

	in  *bufio.Reader // INPUT source
	out io.Writer     // PRINT sink

	maxSteps int // maximum statements per run (0 = unlimited)
	steps    int // statements executed this run
}

type Option func(*Interpreter)

// WithWriter sets the output writer for PRINT statements.
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithInput sets the reader INPUT statements consume lines from.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) { i.in = bufio.NewReader(r) }
}

// WithMaxSteps bounds the number of executed statements before Run returns
// ErrMaxStepsExceeded. The guard for runaway GOTO cycles and STEP 0 loops.
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// New creates an interpreter with an empty program.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		program: &Program{stmts: make(map[int]string)},
		vars:    make(map[string]Value),
		stack:   make([]Frame, 0, 8),
	}

	for _, o := range opts {
		o(i)
	}

	if i.out == nil {
		i.out = os.Stdout
	}
	if i.in == nil {
		i.in = bufio.NewReader(os.Stdin)
	}

	return i
}

// Load replaces the program and resets all runtime state, so a reused
// interpreter behaves like a fresh instance.
func (i *Interpreter) Load(text string) {
	i.program = ParseProgram(text)
	i.Reset()
}

// Reset clears variables, the control stack, the counter, and the step count.
func (i *Interpreter) Reset() {
	i.vars = make(map[string]Value)
	i.stack = i.stack[:0]
	i.pc = 0
	i.steps = 0
}

// Program returns the loaded program.
func (i *Interpreter) Program() *Program {
	return i.program
}

// Step executes the statement at the current counter, returning (halted,
// error). Errors carry the originating line number as a *LineError.
func (i *Interpreter) Step() (bool, error) {
	if i.pc < 0 || i.pc >= i.program.Len() {
		return true, nil
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	line, stmt := i.program.Line(i.pc)
	i.steps++

	halted, err := i.execStatement(stmt)
	if err != nil {
		return false, &LineError{Line: line, Err: err}
	}
	if halted {
		return true, nil
	}

	i.pc++
	return false, nil
}

// Run executes the loaded program from the top until it falls off the end,
// reaches END, or fails.
func (i *Interpreter) Run() error {
	i.pc = 0

	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// Exec loads and runs a program in one call.
func Exec(text string, opts ...Option) error {
	i := New(opts...)
	i.Load(text)
	return i.Run()
}
