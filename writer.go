package logger

/*********************************************************************************
io.Writer interface implementation

levelWriter binds a logger and a fixed level so the pair can be used with
fmt.Fprintf and other io.Writer-based helpers, or plugged into the standard
library log package. The semantics are:
 - Write(p) submits the bytes as one record at the bound level and reports
   len(p) written.
 - A trailing newline in p is stripped: the logger appends its own line
   terminator when formatting the record.

This allows patterns like:

	fmt.Fprintf(l.NewWriter(LVL_WARN), "disk low: %d%%", percent)
*/

import (
	"io"
)

// levelWriter is the io.Writer adapter returned by NewWriter.
type levelWriter struct {
	logger *Logger
	level  LogLevel
}

// NewWriter returns an io.Writer that logs every Write at the given level.
// The writer shares the logger's lifecycle: writes after Finalize are
// accepted and dropped like any other log call.
func (l *Logger) NewWriter(level LogLevel) io.Writer {
	return &levelWriter{logger: l, level: normLevel(level)}
}

// Write implements io.Writer. A nil or empty payload is a zero-length write
// with no error. Write never fails: the logging path absorbs every problem,
// so callers' control flow is never aborted by their logging.
func (lw *levelWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if n == 0 {
		return 0, nil
	}
	msg := p
	if msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	lw.logger.Log(lw.level, string(msg))
	return n, nil
}
