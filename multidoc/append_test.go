package multidoc_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/yamlkit/comment"
	"go.jacobcolvin.com/yamlkit/multidoc"
	"go.jacobcolvin.com/yamlkit/stringtest"
)

type testData struct {
	A int    `yaml:"a"`
	B string `yaml:"b"`
}

func TestAppendToNewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.yaml")

	require.NoError(t, multidoc.Append(path, testData{A: 1, B: "hello"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.Lines(
		"a: 1",
		"b: hello",
	)
	assert.Equal(t, want, string(got))
}

func TestAppendToExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.yaml")

	require.NoError(t, multidoc.Append(path, testData{A: 2, B: "world"}))
	require.NoError(t, multidoc.Append(path, testData{A: 1, B: "hello"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.Lines(
		"a: 2",
		"b: world",
		"",
		"---",
		"a: 1",
		"b: hello",
	)
	assert.Equal(t, want, string(got))
}

func TestAppendMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "docs.yaml")

	err := multidoc.Append(path, testData{A: 1, B: "hello"})
	require.Error(t, err)
}

func TestAppendCommented(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.yaml")

	resolve := func(key comment.KeyData) (string, bool) {
		if key.Text == "a" {
			return "The a value.", true
		}

		return "", false
	}

	require.NoError(t, multidoc.AppendCommented(path, testData{A: 1, B: "hello"}, resolve))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.Lines(
		"# The a value.",
		"a: 1",
		"b: hello",
	)
	assert.Equal(t, want, string(got))
}

func TestAppendThenReadBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.yaml")

	first := testData{A: 2, B: "world"}
	second := testData{A: 1, B: "hello"}

	require.NoError(t, multidoc.Append(path, first))
	require.NoError(t, multidoc.Append(path, second))

	docs, err := multidoc.OpenDocs[testData](path)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, docs.Close())
	}()

	got, err := docs.Next()
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = docs.Next()
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = docs.Next()
	require.ErrorIs(t, err, io.EOF)
}
