package comment_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/yamlkit/comment"
	"go.jacobcolvin.com/yamlkit/stringtest"
)

// personResolver comments the name and age keys.
func personResolver(key comment.KeyData) (string, bool) {
	switch key.Text {
	case "name":
		return "The name of the person.", true
	case "age":
		return stringtest.JoinLF(
			"The age of the person.",
			"In years.",
		), true
	}

	return "", false
}

func TestWriter(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		resolve comment.Resolver
		writes  []string
		want    string
	}{
		"nil resolver passes through": {
			resolve: nil,
			writes:  []string{"name: John Doe\nage: 30\n"},
			want: stringtest.Lines(
				"name: John Doe",
				"age: 30",
			),
		},
		"comments injected before keys": {
			resolve: personResolver,
			writes:  []string{"name: John Doe\nage: 30\n"},
			want: stringtest.Lines(
				"# The name of the person.",
				"name: John Doe",
				"# The age of the person.",
				"# In years.",
				"age: 30",
			),
		},
		"lines split across writes": {
			resolve: personResolver,
			writes:  []string{"name: Jo", "hn Doe\nag", "e: 30\n"},
			want: stringtest.Lines(
				"# The name of the person.",
				"name: John Doe",
				"# The age of the person.",
				"# In years.",
				"age: 30",
			),
		},
		"nested key comment indented to column": {
			resolve: func(key comment.KeyData) (string, bool) {
				if key.Text == "value" {
					return "inner value", true
				}

				return "", false
			},
			writes: []string{"inner:\n  value: hello\n"},
			want: stringtest.Lines(
				"inner:",
				"  # inner value",
				"  value: hello",
			),
		},
		"empty comment line renders as indent only": {
			resolve: func(key comment.KeyData) (string, bool) {
				if key.Text == "value" {
					return "first\n\nsecond", true
				}

				return "", false
			},
			writes: []string{"  value: hello\n"},
			want: stringtest.Lines(
				"  # first",
				"  ",
				"  # second",
				"  value: hello",
			),
		},
		"non-key lines forwarded untouched": {
			resolve: personResolver,
			writes:  []string{"- one\n- two\n"},
			want: stringtest.Lines(
				"- one",
				"- two",
			),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			w := comment.NewWriter(&buf, tc.resolve)

			for _, chunk := range tc.writes {
				n, err := w.Write([]byte(chunk))
				require.NoError(t, err)
				assert.Equal(t, len(chunk), n, "Write must report the full chunk as consumed")
			}

			require.NoError(t, w.Flush())
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriterFlushTrailingLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := comment.NewWriter(&buf, personResolver)

	_, err := w.Write([]byte("name: John Doe"))
	require.NoError(t, err)

	// Nothing is forwarded until the line completes or the stream is
	// flushed.
	assert.Empty(t, buf.String())

	require.NoError(t, w.Flush())
	assert.Equal(t, "# The name of the person.\nname: John Doe", buf.String())
}

func TestWriterInvalidUTF8(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := comment.NewWriter(&buf, nil)

	n, err := w.Write([]byte{0xff, 0xfe, '\n'})
	require.ErrorIs(t, err, comment.ErrInvalidUTF8)
	assert.Zero(t, n)
	assert.Empty(t, buf.String(), "no partial forwarding of the offending chunk")
}

// failWriter fails every write with a fixed error.
type failWriter struct {
	err error
}

func (w *failWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWriterInnerError(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("sink failed")
	w := comment.NewWriter(&failWriter{err: sinkErr}, nil)

	_, err := w.Write([]byte("a: 1\n"))
	require.ErrorIs(t, err, sinkErr)

	// The buffered line survives a failed flush and is retried on the
	// next flush.
	err = w.Flush()
	require.ErrorIs(t, err, sinkErr)
}

// flushRecorder records whether a downstream Flush was propagated.
type flushRecorder struct {
	bytes.Buffer

	flushed bool
}

func (w *flushRecorder) Flush() error {
	w.flushed = true

	return nil
}

func TestWriterFlushPropagates(t *testing.T) {
	t.Parallel()

	rec := &flushRecorder{}
	w := comment.NewWriter(rec, nil)

	_, err := w.Write([]byte("a: 1\n"))
	require.NoError(t, err)

	require.NoError(t, w.Flush())
	assert.True(t, rec.flushed)
}
