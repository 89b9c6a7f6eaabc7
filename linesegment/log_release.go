//go:build !debug

package linesegment

// logDebugf is a no-op in ordinary builds. Build with -tags debug to enable
// the sweep engine and pair intersector's internal tracing; see
// log_debug.go.
func logDebugf(format string, v ...interface{}) {}
