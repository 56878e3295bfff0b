package comment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 indicates bytes that are not valid UTF-8 text, either
// observed by a [Writer] or produced by the encoder. Line-based key
// scanning requires character boundaries, so this is fatal.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// Resolver maps a recognized key to its comment. It returns the comment
// text and true, or "" and false when the key should receive no comment.
//
// The text may contain multiple lines separated by "\n"; each non-empty
// line renders as "# <line>" at the key's indentation, and each empty
// line renders as an indentation-only line. Resolvers are called once per
// recognized key on the encoding hot path and should be cheap; they must
// not write to the destination themselves.
type Resolver func(key KeyData) (string, bool)

// Writer is an [io.Writer] that forwards YAML output to an inner writer,
// inserting comment lines in front of recognized mapping keys.
//
// Written bytes are buffered until a full line is available, the line is
// scanned with [ScanKey], and the [Resolver] decides whether comment lines
// precede it. Write always reports the full input length as consumed on
// success; buffering is decoupled from delivery to the inner writer, and a
// delivery failure surfaces on the Write or Flush call that triggered it.
//
// Call [Writer.Flush] after encoding completes to forward a trailing line
// that has no terminating newline. A Writer is owned by a single encoding
// session and is not safe for concurrent use.
//
// Create instances with [NewWriter].
type Writer struct {
	inner   io.Writer
	resolve Resolver
	buf     bytes.Buffer
}

// NewWriter creates a [Writer] forwarding to w. A nil resolve makes the
// Writer a pure pass-through.
func NewWriter(w io.Writer, resolve Resolver) *Writer {
	return &Writer{
		inner:   w,
		resolve: resolve,
	}
}

// Write buffers p line by line, forwarding each completed line to the
// inner writer preceded by any comment lines its key resolves to.
//
// p must be valid UTF-8; if it is not, Write fails with [ErrInvalidUTF8]
// and forwards nothing from the chunk. Errors from the inner writer
// propagate unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, fmt.Errorf("%w: write chunk is not valid text", ErrInvalidUTF8)
	}

	for i, b := range p {
		w.buf.WriteByte(b)

		if b == '\n' {
			err := w.flushLine()
			if err != nil {
				return i + 1, err
			}
		}
	}

	return len(p), nil
}

// Flush forwards any buffered trailing line without a newline, then
// propagates the flush to the inner writer when it supports one.
func (w *Writer) Flush() error {
	err := w.flushLine()
	if err != nil {
		return err
	}

	if f, ok := w.inner.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// flushLine emits comment lines for the buffered line's key, if any, then
// forwards the line verbatim. The buffer is kept intact on failure so a
// later flush does not lose the line.
func (w *Writer) flushLine() error {
	if w.buf.Len() == 0 {
		return nil
	}

	if key, ok := ScanKey(w.buf.String()); ok {
		err := w.writeComment(key)
		if err != nil {
			return err
		}
	}

	_, err := w.inner.Write(w.buf.Bytes())
	if err != nil {
		return err
	}

	w.buf.Reset()

	return nil
}

// writeComment resolves key and writes its comment lines, indented to the
// key's column.
func (w *Writer) writeComment(key KeyData) error {
	if w.resolve == nil {
		return nil
	}

	text, ok := w.resolve(key)
	if !ok {
		return nil
	}

	indent := strings.Repeat(" ", key.Column)

	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(line, "\n")

		var err error

		if line == "" {
			_, err = io.WriteString(w.inner, indent+"\n")
		} else {
			_, err = io.WriteString(w.inner, indent+"# "+line+"\n")
		}

		if err != nil {
			return err
		}
	}

	return nil
}
