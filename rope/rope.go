// Package rope provides an append-only Rope for holding the text of a buffer.
//
// The tree grows one leaf at a time. The route from the root to the most
// recently appended leaf is cached, so an append only touches the nodes on
// that route and never rescans the tree. The shape of the right edge behaves
// like a binary counter: trailing right steps on the cached path are full
// subtrees, and the deepest left step marks the node that still has room on
// its right side.
//
// A Rope is not safe for concurrent use.
package rope

import (
	"fmt"
	"strings"
)

// A Rope stores a long run of text as bounded leaves of a binary tree.
// The zero value is an empty rope ready to use.
type Rope struct {
	root       *node
	pathToLast path
	leaves     int
}

// New returns an empty rope.
func New() *Rope {
	return &Rope{}
}

// Build splits text into consecutive chunks of leafSize bytes, the last one
// possibly shorter, and appends each chunk as a leaf. An empty text gives an
// empty rope. Build panics if leafSize is not positive.
func Build(text string, leafSize int) *Rope {
	if leafSize <= 0 {
		panic(fmt.Errorf("build with leaf size %d: %w", leafSize, ErrInvalidLeafSize))
	}

	r := New()
	for len(text) > leafSize {
		r.Append(text[:leafSize])
		text = text[leafSize:]
	}
	r.Append(text)
	return r
}

// Append adds segment as the new right-most leaf. Appending an empty segment
// does nothing.
//
// Append panics if the cached path no longer matches the tree; that can only
// happen if the tree was corrupted.
func (r *Rope) Append(segment string) {
	if segment == "" {
		return
	}

	leaf := newLeaf(segment)
	r.leaves++

	if r.root == nil {
		r.root = leaf
		r.pathToLast = nil
		return
	}

	if k := r.pathToLast.lastLeft(); k >= 0 {
		prefix := r.pathToLast[:k]
		junction, err := prefix.followAddingWeight(r.root, leaf.weight)
		if err != nil {
			panic(fmt.Errorf("append: %w", err))
		}
		if junction.right != nil {
			panic(fmt.Errorf("append: junction at %v already has a right child: %w", prefix, ErrBadPath))
		}
		junction.rightWeight += leaf.weight

		next := make(path, k, k+junction.layer)
		copy(next, prefix)
		r.pathToLast = append(next, attach(junction, leaf)...)
		return
	}

	// the right edge is full: grow a new root above the old one
	old := r.root
	root := newInternal(old.size(), leaf.weight, old.layer+1)
	root.left = old
	r.root = root
	r.pathToLast = attach(root, leaf)
}

// attach hangs leaf below the empty right side of parent. Parents above
// layer 1 get a chain of internal nodes, each holding only a left child,
// down to layer 1. It returns the steps from parent to leaf.
func attach(parent, leaf *node) path {
	steps := make(path, 1, parent.layer)
	steps[0] = right

	if parent.layer == 1 {
		parent.right = leaf
		return steps
	}

	cur := newInternal(leaf.weight, 0, parent.layer-1)
	parent.right = cur
	for cur.layer > 1 {
		next := newInternal(leaf.weight, 0, cur.layer-1)
		cur.left = next
		cur = next
		steps = append(steps, left)
	}
	cur.left = leaf
	return append(steps, left)
}

// Len returns the length of the rope in bytes.
func (r *Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.size()
}

func (r *Rope) IsEmpty() bool {
	return r.root == nil
}

// LeafCount returns the number of leaves.
func (r *Rope) LeafCount() int {
	return r.leaves
}

// Depth returns the number of edges between the root and the leaves.
func (r *Rope) Depth() int {
	if r.root == nil {
		return 0
	}
	return r.root.layer
}

// String returns the contents of the rope.
func (r *Rope) String() string {
	var builder strings.Builder
	builder.Grow(r.Len())
	r.Walk(func(leaf string) bool {
		builder.WriteString(leaf)
		return true
	})
	return builder.String()
}
