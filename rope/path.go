package rope

import (
	"fmt"
	"strings"
)

type direction uint8

const (
	left direction = iota
	right
)

func (d direction) String() string {
	if d == right {
		return "RIGHT"
	}
	return "LEFT"
}

// path is a sequence of branch choices starting at the root.
type path []direction

// lastLeft returns the index of the deepest left step, or -1 when the path
// only goes right.
func (p path) lastLeft() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == left {
			return i
		}
	}
	return -1
}

func (p path) String() string {
	parts := make([]string, len(p))
	for i, d := range p {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// follow walks p from start and returns the node it ends on.
func (p path) follow(start *node) (*node, error) {
	return p.walk(start, nil)
}

// followAddingWeight walks p from start and adds n to the counter of every
// node it leaves through: weight on a left step, rightWeight on a right step.
func (p path) followAddingWeight(start *node, n int) (*node, error) {
	return p.walk(start, func(cur *node, d direction) {
		if d == left {
			cur.weight += n
		} else {
			cur.rightWeight += n
		}
	})
}

func (p path) walk(start *node, visit func(*node, direction)) (*node, error) {
	if start == nil {
		return nil, fmt.Errorf("follow %v from empty root: %w", p, ErrBadPath)
	}

	// resolve the whole path first so a broken path leaves counters untouched
	cur := start
	for i, d := range p {
		next := cur.child(d)
		if next == nil {
			return nil, fmt.Errorf("follow %v: no %v child at step %d: %w", p, d, i, ErrBadPath)
		}
		cur = next
	}

	if visit != nil {
		cur = start
		for _, d := range p {
			visit(cur, d)
			cur = cur.child(d)
		}
	}
	return cur, nil
}
