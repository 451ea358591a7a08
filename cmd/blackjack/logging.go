package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// logFile is where play-mode logs go; the TUI owns the terminal.
const logFile = "blackjack.log"

func setupLogger(level string, debug bool) (*log.Logger, func(), error) {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}

	closeLog := func() {
		if err := f.Close(); err != nil {
			log.Error("failed to close log file", "error", err)
		}
	}
	return logger, closeLog, nil
}
