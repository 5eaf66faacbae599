package runner

import (
	"errors"
	"fmt"
	"os"

	"minibasic/pkg/color"
	"minibasic/pkg/interpreter"

	"github.com/charmbracelet/log"
)

// Runner wires CLI options to one interpreter run.
type Runner struct {
	Help       bool   // Show help message
	Verbose    bool   // List the program before running
	NoColor    bool   // Disable colored output
	MaxSteps   int    // Statement budget per run (0 = unlimited)
	SourceFile string // Path to the BASIC source file
}

// Run loads the source file, optionally lists it, and executes it.
func (opts *Runner) Run() error {
	log.Info("loading program", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		log.Fatal("failed to read file", "file", opts.SourceFile, "error", err)
	}

	interp := interpreter.New(interpreter.WithMaxSteps(opts.MaxSteps))
	interp.Load(string(input))

	prog := interp.Program()
	log.Info("program loaded", "lines", prog.Len())

	if opts.Verbose {
		fmt.Println(color.GreenText("=== Program Listing ==="))
		if prog.Len() == 0 {
			fmt.Println(color.GrayText("No numbered lines."))
		}
		for _, line := range prog.Lines() {
			fmt.Println(color.ListingLine(line, prog.Stmt(line)))
		}
		fmt.Println(color.GreenText("=== Program Output ==="))
	}

	if err := interp.Run(); err != nil {
		var le *interpreter.LineError
		if errors.As(err, &le) {
			fmt.Println(color.RuntimeError(fmt.Sprintf("line %s: %v",
				color.YellowText(fmt.Sprintf("%d", le.Line)), le.Err)))
		} else {
			fmt.Println(color.RuntimeError(err.Error()))
		}
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}
