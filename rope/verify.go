package rope

import "fmt"

// Verify checks the bookkeeping of the tree: every counter matches the text
// below it, nodes have the shape their layer implies, and the cached path
// leads to the last leaf. It returns nil for a healthy rope.
func (r *Rope) Verify() error {
	if r.root == nil {
		if len(r.pathToLast) != 0 || r.leaves != 0 {
			return fmt.Errorf("empty rope with path %v and %d leaves: %w", r.pathToLast, r.leaves, ErrLeafShape)
		}
		return nil
	}

	if _, err := verifyNode(r.root, "root"); err != nil {
		return err
	}

	last, err := r.pathToLast.follow(r.root)
	if err != nil {
		return err
	}
	if !last.isLeaf() {
		return fmt.Errorf("path %v ends on an internal node: %w", r.pathToLast, ErrBadPath)
	}

	var rightmost *node
	count := 0
	r.walkLeaves(func(n *node) bool {
		rightmost = n
		count++
		return true
	})
	if rightmost != last {
		return fmt.Errorf("path %v does not end on the last leaf: %w", r.pathToLast, ErrBadPath)
	}
	if count != r.leaves {
		return fmt.Errorf("counted %d leaves, recorded %d: %w", count, r.leaves, ErrLeafShape)
	}
	return nil
}

// verifyNode returns the size of the subtree under n.
func verifyNode(n *node, where string) (int, error) {
	if n.isLeaf() {
		switch {
		case n.layer != 0 || n.rightWeight != 0:
			return 0, fmt.Errorf("leaf at %s has layer %d and right weight %d: %w", where, n.layer, n.rightWeight, ErrLeafShape)
		case n.weight != len(n.content):
			return 0, fmt.Errorf("leaf at %s has weight %d for %d bytes: %w", where, n.weight, len(n.content), ErrWeightMismatch)
		}
		return n.weight, nil
	}

	if n.content != "" || n.layer < 1 || n.left == nil {
		return 0, fmt.Errorf("internal node at %s (layer %d): %w", where, n.layer, ErrLeafShape)
	}

	leftSize, err := verifyChild(n, n.left, where+"/L")
	if err != nil {
		return 0, err
	}
	rightSize := 0
	if n.right != nil {
		if rightSize, err = verifyChild(n, n.right, where+"/R"); err != nil {
			return 0, err
		}
	}

	if n.weight != leftSize || n.rightWeight != rightSize {
		return 0, fmt.Errorf("node at %s has weights %d/%d, subtrees hold %d/%d: %w",
			where, n.weight, n.rightWeight, leftSize, rightSize, ErrWeightMismatch)
	}
	return leftSize + rightSize, nil
}

func verifyChild(parent, child *node, where string) (int, error) {
	if child.layer != parent.layer-1 {
		return 0, fmt.Errorf("node at %s has layer %d below layer %d: %w", where, child.layer, parent.layer, ErrLeafShape)
	}
	return verifyNode(child, where)
}
