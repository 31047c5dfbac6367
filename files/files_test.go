package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goditor/rope"
)

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	text := strings.Repeat("Hello World!\n", 500)
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	r, err := Read(path, 16)
	require.NoError(t, err)
	assert.Equal(t, text, r.String())
	assert.Equal(t, rope.Build(text, 16).Leaves(), r.Leaves())
	require.NoError(t, r.Verify())

	r.Append("appended")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, Write(out, r))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, text+"appended", string(data))
}

func TestWriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content"), 0644))

	require.NoError(t, Write(path, rope.Build("short", 2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Read(path, 8)
	assert.ErrorIs(t, err, os.ErrNotExist)

	r, err := ReadOrEmpty(path, 8)
	require.NoError(t, err)
	assert.True(t, r.IsEmpty())
}
