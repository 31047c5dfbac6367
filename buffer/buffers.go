// Package buffer is the editing surface on top of rope: it keeps the open
// files, the caret of each one, and turns typing into appends.
package buffer

import (
	"path/filepath"
	"sort"

	"github.com/rs/xid"

	"goditor/files"
	"goditor/logging"
	"goditor/rope"
)

// Buffers holds every open buffer.
type Buffers struct {
	Open map[xid.ID]*Buffer

	leafSize int
	log      logging.Logger
}

func NewBuffers(leafSize int, log logging.Logger) *Buffers {
	return &Buffers{
		Open:     make(map[xid.ID]*Buffer),
		leafSize: leafSize,
		log:      log,
	}
}

// SetLeafSize changes the leaf size used for files opened afterwards.
func (b *Buffers) SetLeafSize(leafSize int) {
	b.leafSize = leafSize
}

// OpenFile loads path into a new buffer, or returns the buffer already
// holding it. A missing file opens as an empty buffer that Save creates.
func (b *Buffers) OpenFile(path string) (*Buffer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if buf, ok := b.Find(abs); ok {
		return buf, nil
	}

	r, err := files.ReadOrEmpty(abs, b.leafSize)
	if err != nil {
		return nil, err
	}

	buf := newBuffer(abs, r, b.leafSize, b.log)
	b.Open[buf.ID] = buf
	b.log.Debugf("opened %s as %s: %d bytes in %d leaves", abs, buf.ID, r.Len(), r.LeafCount())
	return buf, nil
}

// NewScratch opens an empty buffer without a file.
func (b *Buffers) NewScratch() *Buffer {
	buf := newBuffer("", rope.New(), b.leafSize, b.log)
	b.Open[buf.ID] = buf
	return buf
}

func (b *Buffers) Get(id xid.ID) (*Buffer, bool) {
	buf, ok := b.Open[id]
	return buf, ok
}

// Find returns the buffer holding path.
func (b *Buffers) Find(path string) (*Buffer, bool) {
	for _, buf := range b.Open {
		if buf.Path != "" && buf.Path == path {
			return buf, true
		}
	}
	return nil, false
}

func (b *Buffers) Close(id xid.ID) {
	delete(b.Open, id)
}

// List returns the open buffers in the order they were opened.
func (b *Buffers) List() []*Buffer {
	list := make([]*Buffer, 0, len(b.Open))
	for _, buf := range b.Open {
		list = append(list, buf)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID.Compare(list[j].ID) < 0
	})
	return list
}
