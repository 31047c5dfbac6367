package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		leafSize int
		leaves   []string
	}{
		{"single leaf", "Hello World!", 12, []string{"Hello World!"}},
		{"leaf larger than text", "Hello World!", 64, []string{"Hello World!"}},
		{"two leaves", "Hello World!", 6, []string{"Hello ", "World!"}},
		{"three leaves", "Hello World!", 4, []string{"Hell", "o Wo", "rld!"}},
		{"four leaves", "Hello World!", 3, []string{"Hel", "lo ", "Wor", "ld!"}},
		{"five leaves", "HelloWorld", 2, []string{"He", "ll", "oW", "or", "ld"}},
		{"short last leaf", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"empty", "", 4, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Build(tt.text, tt.leafSize)
			assert.Equal(t, tt.leaves, r.Leaves())
			assert.Equal(t, tt.text, r.String())
			assert.Equal(t, len(tt.text), r.Len())
			assert.Equal(t, len(tt.leaves), r.LeafCount())
			require.NoError(t, r.Verify())
		})
	}
}

func TestBuildInvalidLeafSize(t *testing.T) {
	assert.PanicsWithError(t, "build with leaf size 0: leaf size must be positive", func() {
		Build("abc", 0)
	})
}

func TestSingleLeafShape(t *testing.T) {
	// o
	r := Build("Hello World!", 12)
	require.NotNil(t, r.root)
	assert.True(t, r.root.isLeaf())
	assert.Equal(t, "Hello World!", r.root.content)
	assert.Equal(t, 12, r.root.weight)
	assert.Equal(t, 0, r.root.rightWeight)
	assert.Empty(t, r.pathToLast)
}

func TestTwoLeavesShape(t *testing.T) {
	//   o
	//  / \
	// o   o
	r := Build("Hello World!", 6)
	assert.Equal(t, "", r.root.content)
	assert.Equal(t, "Hello ", r.root.left.content)
	assert.Equal(t, "World!", r.root.right.content)
	assert.Equal(t, 6, r.root.weight)
	assert.Equal(t, 6, r.root.rightWeight)
	assert.Equal(t, 6, r.root.right.weight)
	assert.Equal(t, path{right}, r.pathToLast)
}

func TestThreeLeavesShape(t *testing.T) {
	//      o
	//    _/ \_
	//   o     o
	//  / \   /
	// o   o o
	r := Build("Hello World!", 4)
	assert.Equal(t, "Hell", r.root.left.left.content)
	assert.Equal(t, "o Wo", r.root.left.right.content)
	assert.Equal(t, "rld!", r.root.right.left.content)
	assert.Nil(t, r.root.right.right)
	assert.Equal(t, 2, r.root.layer)
	assert.Equal(t, path{right, left}, r.pathToLast)
}

func TestFourLeavesShape(t *testing.T) {
	//      o
	//    _/ \_
	//   o     o
	//  / \   / \
	// o   o o   o
	r := Build("Hello World!", 3)
	assert.Equal(t, "Hel", r.root.left.left.content)
	assert.Equal(t, "lo ", r.root.left.right.content)
	assert.Equal(t, "Wor", r.root.right.left.content)
	assert.Equal(t, "ld!", r.root.right.right.content)
	assert.Equal(t, path{right, right}, r.pathToLast)
}

func TestFiveLeavesShape(t *testing.T) {
	//         ____o____
	//        /         \
	//      o            o
	//    _/ \_        _/
	//   o     o      o
	//  / \   / \    /
	// o   o o   o  o
	r := Build("HelloWorld", 2)
	assert.Equal(t, "He", r.root.left.left.left.content)
	assert.Equal(t, "ll", r.root.left.left.right.content)
	assert.Equal(t, "oW", r.root.left.right.left.content)
	assert.Equal(t, "or", r.root.left.right.right.content)
	assert.Equal(t, "ld", r.root.right.left.left.content)

	assert.Equal(t, 8, r.root.weight)
	assert.Equal(t, 2, r.root.rightWeight)
	assert.Equal(t, 4, r.root.left.rightWeight)
	assert.Equal(t, 3, r.Depth())
	assert.Equal(t, path{right, left, left}, r.pathToLast)
}

func TestAppend(t *testing.T) {
	r := New()
	assert.True(t, r.IsEmpty())

	var want strings.Builder
	for i := 0; i < 100; i++ {
		segment := strings.Repeat(string(rune('a'+i%26)), i%7+1)
		r.Append(segment)
		want.WriteString(segment)

		require.NoError(t, r.Verify(), "after %d appends", i+1)
		assert.Equal(t, want.Len(), r.root.weight+r.root.rightWeight)
	}
	assert.Equal(t, want.String(), r.String())
	assert.Equal(t, 100, r.LeafCount())
	assert.Equal(t, 7, r.Depth())
}

func TestAppendAfterBuild(t *testing.T) {
	r := Build("HelloWorld", 3)
	r.Append("!")
	r.Append("")
	r.Append("?!")

	assert.Equal(t, []string{"Hel", "loW", "orl", "d", "!", "?!"}, r.Leaves())
	assert.Equal(t, "HelloWorld!?!", r.String())
	require.NoError(t, r.Verify())
}

func TestAppendEmptySegment(t *testing.T) {
	r := New()
	r.Append("")
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.LeafCount())
}

func TestAppendDepthIsLogarithmic(t *testing.T) {
	r := New()
	for i := 1; i <= 1024; i++ {
		r.Append("x")
		depth := 0
		for 1<<depth < i {
			depth++
		}
		require.Equal(t, depth, r.Depth(), "after %d leaves", i)
	}
}

func TestAppendOnBrokenPathPanics(t *testing.T) {
	r := Build("abcdef", 2)
	r.root.right = nil

	assert.Panics(t, func() {
		r.Append("gh")
	})
}

func TestRoundTrip(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 37)
	for leafSize := 1; leafSize <= 50; leafSize++ {
		r := Build(text, leafSize)
		require.Equal(t, text, strings.Join(r.Leaves(), ""), "leaf size %d", leafSize)
		require.NoError(t, r.Verify(), "leaf size %d", leafSize)
	}
}
