// Package output writes the echoed line.
package output

import (
	"io"

	"caseecho/internal/errors"
)

// Writer emits result lines to an underlying io.Writer.
// Each line is written with exactly one Write call, so a line is never
// split across writes on pipes or terminals.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w. The Writer does not own w and never
// closes it; the command passes os.Stdout or a test buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine writes line followed by a newline in a single Write call.
// Write errors and short writes are returned as OutputError so the command
// can report them on stderr with a failure exit code.
func (w *Writer) WriteLine(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	n, err := w.w.Write(buf)
	if err != nil {
		return errors.NewOutputError("failed to write output", err)
	}
	if n != len(buf) {
		return errors.NewOutputError("failed to write output", io.ErrShortWrite)
	}
	return nil
}
