package main

import (
	"flag"
	"fmt"
	"os"

	"minibasic/internal/config"
	"minibasic/internal/logger"
	"minibasic/internal/runner"
	"minibasic/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the minibasic interpreter.
func main() {
	cfg, cfgErr := config.Load(config.DefaultFile)

	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", cfg.Verbose, "Verbose mode (list the program before running)")
	flag.BoolVar(&options.NoColor, "n", cfg.NoColor, "No color")
	flag.IntVar(&options.MaxSteps, "s", cfg.MaxSteps, "Maximum statements per run (0 = unlimited)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if cfgErr != nil {
		log.Warn("ignoring config file", "error", cfgErr)
	}

	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("no input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	options.SourceFile = args[0]

	if err := options.Run(); err != nil {
		os.Exit(1)
	}
}
