//go:build debug

package linesegment

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[linesweep DEBUG] ", log.LstdFlags)

// logDebugf logs a debug message. Only compiled into builds tagged "debug";
// see log_release.go for the normal, no-op build.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
