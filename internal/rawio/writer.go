// Package rawio writes program text to file descriptors one request at a time.
//
// It mirrors the primitives of a C-style self-printing program: a single
// write request per call, a terminator scan to size each request, and a
// quoting helper that emits one line of a string-array literal.
package rawio

import (
	"fmt"
	"io"
	"strconv"
)

// Writer prints strings to an underlying writer, one write request per call.
// The first failure is kept and every later call becomes a no-op, so callers
// check Err once after a sequence of prints.
type Writer struct {
	dst     io.Writer
	scratch []byte
	err     error
}

// NewWriter returns a Writer that sends every print to dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// Print writes s. The length of the request is measured with Strlen over a
// zero-terminated copy, so s is cut at its first NUL byte.
func (w *Writer) Print(s string) {
	if w.err != nil {
		return
	}

	w.scratch = append(w.scratch[:0], s...)
	w.scratch = append(w.scratch, 0)

	w.write(w.scratch[:Strlen(w.scratch)])
}

// PrintQuoted writes s as one line of a Go string-slice literal: an opening
// quote, the escaped body of s, then a closing quote, a comma and a newline.
func (w *Writer) PrintQuoted(s string) {
	w.Print(`"`)
	w.Print(Escape(s))
	w.Print("\",\n")
}

// Err returns the first write failure, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if len(p) == 0 {
		return
	}

	n, err := w.dst.Write(p)

	switch {
	case err != nil:
		w.err = fmt.Errorf("write %d bytes: %w", len(p), err)
	case n < len(p):
		w.err = fmt.Errorf("wrote %d of %d bytes: %w", n, len(p), io.ErrShortWrite)
	}
}

// Escape returns the body of the Go double-quoted literal for s, without
// the surrounding quotes.
func Escape(s string) string {
	q := strconv.Quote(s)

	return q[1 : len(q)-1]
}
