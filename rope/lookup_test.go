package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate(t *testing.T) {
	r := Build("HelloWorld", 2)

	leaf, offset, ok := r.Locate(3)
	assert.True(t, ok)
	assert.Equal(t, "ll", leaf)
	assert.Equal(t, 1, offset)

	leaf, offset, ok = r.Locate(0)
	assert.True(t, ok)
	assert.Equal(t, "He", leaf)
	assert.Equal(t, 0, offset)

	leaf, offset, ok = r.Locate(9)
	assert.True(t, ok)
	assert.Equal(t, "ld", leaf)
	assert.Equal(t, 1, offset)
}

func TestLocateOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		rope  *Rope
		index int
	}{
		{"empty rope", New(), 0},
		{"negative", Build("HelloWorld", 2), -1},
		{"at length", Build("HelloWorld", 2), 10},
		{"past length", Build("HelloWorld", 2), 12},
		{"far past length", Build("HelloWorld", 3), 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf, offset, ok := tt.rope.Locate(tt.index)
			assert.False(t, ok)
			assert.Empty(t, leaf)
			assert.Zero(t, offset)
		})
	}
}

func TestLocateEveryIndex(t *testing.T) {
	text := strings.Repeat("0123456789abcdef", 20) + "tail"
	for _, leafSize := range []int{1, 2, 3, 5, 8, 13, 64, 1000} {
		r := Build(text, leafSize)
		for i := 0; i < len(text); i++ {
			leaf, offset, ok := r.Locate(i)
			if !assert.True(t, ok, "leaf size %d index %d", leafSize, i) {
				return
			}
			assert.Equal(t, text[i], leaf[offset], "leaf size %d index %d", leafSize, i)
		}
		_, _, ok := r.Locate(len(text))
		assert.False(t, ok)
	}
}

func TestLocateAfterAppends(t *testing.T) {
	r := Build("abc", 2)
	r.Append("defg")
	r.Append("h")
	r.Append("ijklmn")

	text := "abcdefghijklmn"
	for i := range text {
		b, ok := r.ByteAt(i)
		assert.True(t, ok)
		assert.Equal(t, text[i], b, "index %d", i)
	}

	leaf, offset, ok := r.Locate(5)
	assert.True(t, ok)
	assert.Equal(t, "defg", leaf)
	assert.Equal(t, 2, offset)

	_, ok = r.ByteAt(len(text))
	assert.False(t, ok)
}
