package multidoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrInvalidYAML indicates a document that could not be decoded.
var ErrInvalidYAML = errors.New("invalid yaml")

// Docs lazily reads "---"-separated YAML documents of type T from a
// stream, one document at a time.
//
// Create instances with [NewDocs] or [OpenDocs].
type Docs[T any] struct {
	scanner *bufio.Scanner
	closer  io.Closer
	done    bool
}

// NewDocs creates a [Docs] reading from r.
func NewDocs[T any](r io.Reader) *Docs[T] {
	return &Docs[T]{
		scanner: bufio.NewScanner(r),
	}
}

// OpenDocs creates a [Docs] reading from the file at path. Call
// [Docs.Close] when done.
func OpenDocs[T any](path string) (*Docs[T], error) {
	f, err := os.Open(path) //nolint:gosec // Document file path is caller-provided.
	if err != nil {
		return nil, fmt.Errorf("opening document file: %w", err)
	}

	d := NewDocs[T](f)
	d.closer = f

	return d, nil
}

// Next returns the next document in the stream. It returns [io.EOF] once
// the stream is exhausted, and an error wrapping [ErrInvalidYAML] when a
// document fails to decode. A separator line with nothing buffered before
// it is skipped rather than decoded as an empty document.
func (d *Docs[T]) Next() (T, error) {
	var value T

	if d.done {
		return value, io.EOF
	}

	var lines []string

	for d.scanner.Scan() {
		line := d.scanner.Text()

		if strings.HasPrefix(line, separator) {
			if isBlank(lines) {
				lines = lines[:0]

				continue
			}

			return decode[T](lines)
		}

		lines = append(lines, line)
	}

	d.done = true

	err := d.scanner.Err()
	if err != nil {
		return value, fmt.Errorf("reading document file: %w", err)
	}

	if isBlank(lines) {
		return value, io.EOF
	}

	return decode[T](lines)
}

// All returns an iterator over the remaining documents. Iteration stops
// after the first error; [io.EOF] is consumed rather than yielded.
func (d *Docs[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			value, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}

// Close closes the underlying file, if any.
func (d *Docs[T]) Close() error {
	if d.closer == nil {
		return nil
	}

	return d.closer.Close()
}

func decode[T any](lines []string) (T, error) {
	var value T

	err := yaml.Unmarshal([]byte(strings.Join(lines, "\n")), &value)
	if err != nil {
		return value, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	return value, nil
}

// isBlank reports whether no buffered line carries content.
func isBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}

	return true
}
