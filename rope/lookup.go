package rope

// Locate finds the leaf holding the byte at index. It returns the content of
// that leaf and the zero-based offset of the byte inside it. ok is false
// when index is negative or not below Len; callers are expected to handle
// that case, it is not an error.
func (r *Rope) Locate(index int) (leaf string, offset int, ok bool) {
	if r.root == nil || index < 0 || index >= r.Len() {
		return "", 0, false
	}

	cur := r.root
	remaining := index
	for !cur.isLeaf() {
		var next *node
		if remaining >= cur.weight {
			remaining -= cur.weight
			next = cur.right
		} else {
			next = cur.left
		}
		if next == nil {
			return "", 0, false
		}
		cur = next
	}

	if remaining >= len(cur.content) {
		return "", 0, false
	}
	return cur.content, remaining, true
}

// ByteAt returns the byte at index.
func (r *Rope) ByteAt(index int) (byte, bool) {
	leaf, offset, ok := r.Locate(index)
	if !ok {
		return 0, false
	}
	return leaf[offset], true
}
