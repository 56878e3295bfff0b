package multidoc

import (
	"fmt"
	"os"

	"go.jacobcolvin.com/yamlkit/comment"
)

// separator begins a line that marks a document boundary.
const separator = "---"

// Append serializes v as YAML and appends it to the file at path, creating
// the file if it does not exist. When the file already holds data, a blank
// line and a "---" separator line are written before the new document, so
// the file accumulates independent documents readable with [Docs].
func Append(path string, v any) error {
	return AppendCommented(path, v, nil)
}

// AppendCommented is [Append] with comment injection: the document is
// encoded through [comment.Encode] with the given resolver. A nil resolve
// appends the document without comments.
func AppendCommented(path string, v any, resolve comment.Resolver) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644) //nolint:gosec // Document file path is caller-provided.
	if err != nil {
		return fmt.Errorf("opening document file: %w", err)
	}

	err = appendTo(f, v, resolve)
	if err != nil {
		_ = f.Close()

		return err
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("closing document file: %w", err)
	}

	return nil
}

func appendTo(f *os.File, v any, resolve comment.Resolver) error {
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat document file: %w", err)
	}

	if info.Size() != 0 {
		_, err = f.WriteString("\n" + separator + "\n")
		if err != nil {
			return fmt.Errorf("writing document separator: %w", err)
		}
	}

	return comment.Encode(f, v, resolve)
}
