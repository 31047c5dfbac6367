package rope

// node is either a leaf holding a bounded piece of text or an internal node
// owning two children. Nodes are never shared between parents.
type node struct {
	content string

	// weight is the length of the text under the left subtree. For a leaf
	// it is the length of its own content.
	weight int
	// rightWeight is the length of the text under the right subtree, always
	// 0 for a leaf.
	rightWeight int
	// layer is the distance to the nearest leaf below, 0 at leaves.
	layer int

	left, right *node
}

func newLeaf(content string) *node {
	return &node{content: content, weight: len(content)}
}

func newInternal(weight, rightWeight, layer int) *node {
	return &node{weight: weight, rightWeight: rightWeight, layer: layer}
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// size is the length of all text stored under n.
func (n *node) size() int {
	return n.weight + n.rightWeight
}

func (n *node) child(d direction) *node {
	if d == left {
		return n.left
	}
	return n.right
}
