package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	iv := Interval{2, 6}
	assert.Equal(t, 4, iv.Len())
	assert.False(t, iv.IsEmpty())
	assert.Equal(t, "[2, 6)", iv.String())
	assert.Equal(t, Interval{4, 6}, iv.Intersection(Interval{4, 10}))
	assert.True(t, iv.Intersection(Interval{7, 9}).IsEmpty())
	assert.Equal(t, 0, Interval{5, 3}.Len())
	assert.Equal(t, Interval{5, 9}, iv.Translate(3))
}

func TestSlice(t *testing.T) {
	r := Build("HelloWorld", 3)

	assert.Equal(t, "loWor", r.Slice(Interval{3, 8}))
	assert.Equal(t, "ld", r.Slice(Interval{8, 20}))
	assert.Equal(t, "He", r.Slice(Interval{-4, 2}))
	assert.Equal(t, "", r.Slice(Interval{6, 6}))
	assert.Equal(t, "", New().Slice(Interval{0, 1}))
}
