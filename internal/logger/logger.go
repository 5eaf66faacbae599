package logger

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init initializes the logger
func Init(debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(os.Stderr,
		log.Options{
			ReportCaller:    true,
			ReportTimestamp: false, // interpreter output is interactive, timestamps are noise
			TimeFormat:      time.RFC3339,
			Prefix:          "MINIBASIC",
		}))

	if !debug {
		log.SetLevel(log.ErrorLevel | log.WarnLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
