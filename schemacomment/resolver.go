package schemacomment

import (
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/yamlkit/comment"
)

// defaultIndent is the encoder's indentation convention in spaces per
// nesting level.
const defaultIndent = 2

// Option configures a resolver.
type Option func(*resolver)

// WithIndent sets the indentation step, in spaces, used to map a key's
// column to a schema nesting level. Values less than 1 are clamped to 1.
func WithIndent(n int) Option {
	return func(r *resolver) {
		if n < 1 {
			n = 1
		}

		r.indent = n
	}
}

// NewResolver returns a [comment.Resolver] that resolves each key to the
// description of the matching property in schema.
//
// The resolver tracks the path of keys seen so far, keyed by indentation
// depth, so it must observe the document's keys in output order; it is
// intended for a single encoding session. Use a fresh resolver per
// [comment.Encode] or [comment.Marshal] call.
func NewResolver(schema *jsonschema.Schema, opts ...Option) comment.Resolver {
	r := &resolver{
		schema: schema,
		indent: defaultIndent,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r.resolve
}

type resolver struct {
	schema *jsonschema.Schema
	path   []string
	indent int
}

func (r *resolver) resolve(key comment.KeyData) (string, bool) {
	level := key.Column / r.indent
	if level > len(r.path) {
		// A jump deeper than one level at a time means the column is not
		// a mapping nesting depth (e.g. a sequence entry); leave the key
		// alone.
		return "", false
	}

	r.path = append(r.path[:level], key.Text)

	node := r.schema

	for _, name := range r.path {
		if node == nil || node.Properties == nil {
			return "", false
		}

		node = node.Properties[name]
	}

	if node == nil || node.Description == "" {
		return "", false
	}

	return node.Description, true
}
