package rope

// Walk calls fn for every leaf from left to right until fn returns false.
func (r *Rope) Walk(fn func(leaf string) bool) {
	r.walkLeaves(func(n *node) bool {
		return fn(n.content)
	})
}

// Leaves returns the content of every leaf, in order.
func (r *Rope) Leaves() []string {
	leaves := make([]string, 0, r.leaves)
	r.Walk(func(leaf string) bool {
		leaves = append(leaves, leaf)
		return true
	})
	return leaves
}

// walkLeaves visits leaves in order with an explicit stack, so deep trees
// never grow the goroutine stack.
func (r *Rope) walkLeaves(fn func(*node) bool) {
	if r.root == nil {
		return
	}

	stack := make([]*node, 0, 2*r.root.layer+1)
	stack = append(stack, r.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.isLeaf() {
			if !fn(n) {
				return
			}
			continue
		}

		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}
