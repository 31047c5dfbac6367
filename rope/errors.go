package rope

import "errors"

var (
	// ErrBadPath is returned when a recorded path cannot be followed.
	// It means the tree is structurally broken.
	ErrBadPath = errors.New("the path given cannot be followed")

	// ErrWeightMismatch is returned by Verify when a cached counter differs
	// from the text actually stored under a node.
	ErrWeightMismatch = errors.New("node weight does not match subtree size")

	// ErrLeafShape is returned by Verify for a leaf with children counters
	// or an internal node holding text.
	ErrLeafShape = errors.New("malformed node")

	// ErrInvalidLeafSize is the panic value of Build and NewWriter when the
	// leaf size is not positive.
	ErrInvalidLeafSize = errors.New("leaf size must be positive")

	// ErrWriterClosed is returned by a Writer written to after Rope.
	ErrWriterClosed = errors.New("write after rope was taken")
)
