// Package logging implements the log line format of spec §6:
// LEVEL - DD/MM/YYYY HH:MM:SS - "<message>". Logging is not part of the
// core's correctness surface (§6); this package exists purely as an
// external collaborator the coordinator and CLI write through, matching
// the teacher's own texture of logging exclusively via stdlib log — no
// third-party logging library appears anywhere in the teacher's go.mod,
// so none is introduced here either (see DESIGN.md).
package logging

import (
	"fmt"
	"io"
	"os"
	"time"
)

const timeLayout = "02/01/2006 15:04:05"

// Stdout and Stderr are the default destinations for Info/Warn/Fatal.
// Tests may swap them to capture output.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// exit is os.Exit, indirected so Fatal is testable.
var exit = os.Exit

// Info logs an informational line to Stdout.
func Info(format string, args ...any) {
	writeLine(Stdout, "INFO", format, args...)
}

// Warn logs a warning line to Stderr. Warn is used for every steady-state,
// per-URL failure (§7): it never halts the crawl.
func Warn(format string, args ...any) {
	writeLine(Stderr, "WARN", format, args...)
}

// Fatal logs a fatal line to Stderr and terminates the process with exit
// code 1, matching the CLI contract of §6/§7 for startup errors.
func Fatal(format string, args ...any) {
	writeLine(Stderr, "FATAL", format, args...)
	exit(1)
}

func writeLine(w io.Writer, level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s - %s - %q\n", level, time.Now().Format(timeLayout), msg)
}
