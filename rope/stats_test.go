package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	s := Build("Hello World!", 5).Stats()
	assert.Equal(t, 3, s.Leaves)
	assert.Equal(t, 12, s.Length)
	assert.Equal(t, 2, s.Depth)
	assert.Equal(t, 2, s.MinLeaf)
	assert.Equal(t, 5, s.MaxLeaf)
	assert.InDelta(t, 4.0, s.MeanLeaf, 1e-9)
	assert.InDelta(t, 1.7320508, s.StdDevLeaf, 1e-6)
}

func TestStatsSmallRopes(t *testing.T) {
	assert.Equal(t, Stats{}, New().Stats())

	s := Build("abc", 8).Stats()
	assert.Equal(t, Stats{Leaves: 1, Length: 3, MinLeaf: 3, MaxLeaf: 3, MeanLeaf: 3}, s)
}
