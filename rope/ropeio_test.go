package rope

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIO(t *testing.T) {
	r := Build("Hello, world!", 4)
	w := NewWriter(4)

	_, err := io.Copy(w, NewReader(r))
	require.NoError(t, err)

	r2 := w.Rope()
	assert.Equal(t, r.String(), r2.String())
	assert.Equal(t, r.Leaves(), r2.Leaves())
}

func TestWriterMatchesBuild(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 11)
	w := NewWriter(7)
	for _, part := range []string{text[:3], text[3:50], "", text[50:51], text[51:]} {
		n, err := w.WriteString(part)
		require.NoError(t, err)
		assert.Equal(t, len(part), n)
	}

	r := w.Rope()
	assert.Equal(t, Build(text, 7).Leaves(), r.Leaves())
	assert.NoError(t, r.Verify())
}

func TestWriterClosedByRope(t *testing.T) {
	w := NewWriter(3)
	_, err := w.WriteString("abcd")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "d"}, w.Rope().Leaves())

	n, err := w.WriteString("ef")
	assert.ErrorIs(t, err, ErrWriterClosed)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{"abc", "d"}, w.Rope().Leaves())
}

func TestReadAt(t *testing.T) {
	r := Build("HelloWorld", 3)

	p := make([]byte, 4)
	n, err := r.ReadAt(p, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "lloW", string(p))

	n, err = r.ReadAt(p, 8)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ld", string(p[:n]))

	_, err = r.ReadAt(p, -1)
	assert.Error(t, err)
}

func TestWriteTo(t *testing.T) {
	r := Build("HelloWorld", 3)
	var out bytes.Buffer

	n, err := r.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
	assert.Equal(t, "HelloWorld", out.String())
}

func TestReaderEmptyRope(t *testing.T) {
	data, err := io.ReadAll(NewReader(New()))
	require.NoError(t, err)
	assert.Empty(t, data)
}
