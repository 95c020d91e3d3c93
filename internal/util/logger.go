// Package util provides logging and deterministic sample generation for the
// command-line tools and tests.
package util

import (
	"fmt"
	"log"
	"time"
)

// Log logs a message if verbose is true.
func Log(verbose bool, format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// ProgressLogger tracks and prints progress of a long scan.
type ProgressLogger struct {
	totalEvents    uint64
	prefix         string
	loggedEvents   uint64
	logStep        uint64
	nextEventToLog uint64
	enabled        bool
	startTime      time.Time
}

// NewProgressLogger creates a progress logger over totalEvents events.
func NewProgressLogger(totalEvents uint64, prefix string, enable bool) *ProgressLogger {
	pl := &ProgressLogger{
		totalEvents: totalEvents,
		prefix:      prefix,
		enabled:     enable,
		startTime:   time.Now(),
	}
	pl.logStep = (totalEvents + 19) / 20 // 5% steps
	if pl.logStep == 0 {
		pl.logStep = 1
	}
	if enable {
		pl.nextEventToLog = pl.logStep
	} else {
		pl.nextEventToLog = ^uint64(0)
	}
	return pl
}

// Log increments the counter and prints when the next step is reached.
func (pl *ProgressLogger) Log() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents++
	if pl.loggedEvents >= pl.nextEventToLog {
		pl.update(false)
		pl.nextEventToLog += pl.logStep
		if pl.nextEventToLog > pl.totalEvents {
			pl.nextEventToLog = pl.totalEvents
		}
	}
}

// Finalize prints the 100% update with the elapsed time.
func (pl *ProgressLogger) Finalize() {
	if !pl.enabled {
		return
	}
	pl.loggedEvents = pl.totalEvents
	pl.update(true)
}

func (pl *ProgressLogger) update(final bool) {
	perc := uint64(0)
	if pl.totalEvents > 0 {
		perc = 100 * pl.loggedEvents / pl.totalEvents
	}
	fmt.Printf("\r%s%d%%", pl.prefix, perc)
	if final {
		fmt.Printf(" (%.2fs)\n", time.Since(pl.startTime).Seconds())
	}
}
