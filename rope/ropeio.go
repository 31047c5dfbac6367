package rope

import (
	"fmt"
	"io"
)

// A Reader implements io.Reader and io.ReaderAt over a rope.
type Reader struct {
	rope     *Rope
	position int64
}

// NewReader returns a Reader positioned at the start of r.
func NewReader(r *Rope) *Reader {
	return &Reader{rope: r}
}

// Read reads from the current position and advances it.
func (reader *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err = reader.rope.ReadAt(p, reader.position)
	reader.position += int64(n)
	if n > 0 && err == io.EOF {
		err = nil
	}
	return
}

// ReadAt implements io.ReaderAt on the underlying rope.
func (reader *Reader) ReadAt(p []byte, off int64) (int, error) {
	return reader.rope.ReadAt(p, off)
}

// ReadAt reads len(p) bytes starting at off. If fewer bytes are available
// err is io.EOF.
func (r *Rope) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, fmt.Errorf("read at %d: negative offset", off)
	}

	o := int(off)
	for n < len(p) {
		leaf, at, ok := r.Locate(o + n)
		if !ok {
			break
		}
		n += copy(p[n:], leaf[at:])
	}

	if n < len(p) {
		err = io.EOF
	}
	return
}

// WriteTo writes the leaves of r to w in order.
func (r *Rope) WriteTo(w io.Writer) (written int64, err error) {
	r.Walk(func(leaf string) bool {
		var n int
		n, err = io.WriteString(w, leaf)
		written += int64(n)
		return err == nil
	})
	return
}

// A Writer builds a rope out of everything written to it. Bytes are cut
// into leaves of leafSize regardless of how the writes are split, so the
// result matches Build on the concatenated input. Rope ends the writer.
type Writer struct {
	rope     *Rope
	leafSize int
	pending  []byte
	done     bool
}

// NewWriter returns a Writer producing leaves of leafSize bytes. It panics
// if leafSize is not positive.
func NewWriter(leafSize int) *Writer {
	if leafSize <= 0 {
		panic(fmt.Errorf("writer with leaf size %d: %w", leafSize, ErrInvalidLeafSize))
	}
	return &Writer{rope: New(), leafSize: leafSize}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.done {
		return 0, ErrWriterClosed
	}
	w.pending = append(w.pending, p...)
	w.flush(false)
	return len(p), nil
}

func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Rope appends whatever is still pending and returns the rope. Later
// writes fail with ErrWriterClosed.
func (w *Writer) Rope() *Rope {
	w.done = true
	w.flush(true)
	return w.rope
}

func (w *Writer) flush(all bool) {
	for len(w.pending) >= w.leafSize {
		w.rope.Append(string(w.pending[:w.leafSize]))
		w.pending = w.pending[w.leafSize:]
	}
	if all && len(w.pending) > 0 {
		w.rope.Append(string(w.pending))
		w.pending = nil
	}
	if len(w.pending) == 0 {
		w.pending = nil
	}
}
