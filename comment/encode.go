package comment

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Encode serializes v as YAML to w, inserting comments selected by
// resolve in front of recognized mapping keys.
//
// Encoding is performed by [github.com/goccy/go-yaml] writing through a
// [Writer]; the encoder's output is otherwise unmodified. Errors from w
// propagate unchanged, and encoding failures are wrapped with context.
func Encode(w io.Writer, v any, resolve Resolver) error {
	cw := NewWriter(w, resolve)
	enc := yaml.NewEncoder(cw)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("closing yaml encoder: %w", err)
	}

	return cw.Flush()
}

// Marshal serializes v as YAML with comments selected by resolve and
// returns the annotated document. See [Encode].
func Marshal(v any, resolve Resolver) ([]byte, error) {
	var buf bytes.Buffer

	err := Encode(&buf, v, resolve)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
