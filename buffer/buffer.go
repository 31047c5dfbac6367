package buffer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/rs/xid"

	"goditor/files"
	"goditor/logging"
	"goditor/rope"
)

// ErrNoPath is returned when saving a buffer that has no file.
var ErrNoPath = errors.New("buffer has no file name")

var readClipboard = clipboard.ReadAll

// A Buffer is one open text. The caret is a byte offset in [0, Len].
// Text can only be added at the end.
type Buffer struct {
	ID   xid.ID
	Path string

	rope     *rope.Rope
	leafSize int
	caret    int
	dirty    bool
	// lineStarts holds the offset of the first byte of every line.
	lineStarts []int

	log logging.Logger
}

func newBuffer(path string, r *rope.Rope, leafSize int, log logging.Logger) *Buffer {
	b := &Buffer{ID: xid.New(), Path: path, rope: r, leafSize: leafSize, lineStarts: []int{0}, log: log}
	offset := 0
	r.Walk(func(leaf string) bool {
		b.indexLines(offset, leaf)
		offset += len(leaf)
		return true
	})
	return b
}

func (b *Buffer) indexLines(offset int, text string) {
	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return
		}
		offset += i + 1
		b.lineStarts = append(b.lineStarts, offset)
		text = text[i+1:]
	}
}

func (b *Buffer) Rope() *rope.Rope {
	return b.rope
}

func (b *Buffer) String() string {
	return b.rope.String()
}

func (b *Buffer) Len() int {
	return b.rope.Len()
}

func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Name returns the file name, or "[scratch]" for buffers without a file.
func (b *Buffer) Name() string {
	if b.Path == "" {
		return "[scratch]"
	}
	return b.Path
}

// Type appends text to the buffer and moves the caret behind it. Text
// longer than a leaf is appended in leaf sized pieces.
func (b *Buffer) Type(text string) {
	if text == "" {
		return
	}

	offset := b.rope.Len()
	size := b.leafSize
	if size <= 0 {
		size = len(text)
	}
	for rest := text; rest != ""; {
		n := min(len(rest), size)
		b.rope.Append(rest[:n])
		rest = rest[n:]
	}
	b.indexLines(offset, text)
	b.caret = b.rope.Len()
	b.dirty = true
}

// TypeRune appends a single character.
func (b *Buffer) TypeRune(r rune) {
	b.Type(string(r))
}

// Paste types the content of the system clipboard.
func (b *Buffer) Paste() error {
	text, err := readClipboard()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	b.Type(text)
	return nil
}

// Save writes the buffer to its file.
func (b *Buffer) Save() error {
	if b.Path == "" {
		return ErrNoPath
	}
	if err := files.Write(b.Path, b.rope); err != nil {
		return err
	}
	b.dirty = false
	b.log.Debugf("saved %s: %d bytes", b.Path, b.rope.Len())
	return nil
}

// SaveAs sets the file of the buffer and saves it.
func (b *Buffer) SaveAs(path string) error {
	b.Path = path
	return b.Save()
}

// Caret returns the caret as a byte offset.
func (b *Buffer) Caret() int {
	return b.caret
}

// SetCaret moves the caret to offset, clamped to the buffer and moved back
// to the start of the character it points into.
func (b *Buffer) SetCaret(offset int) {
	b.caret = max(0, min(offset, b.rope.Len()))
	b.alignCaret()
}

// CharAtCaret returns the leaf under the caret and the offset of the caret
// inside it. ok is false when the caret sits behind the last character.
func (b *Buffer) CharAtCaret() (leaf string, offset int, ok bool) {
	return b.rope.Locate(b.caret)
}

// RuneAtCaret decodes the character under the caret, reading across leaf
// boundaries when needed.
func (b *Buffer) RuneAtCaret() (rune, bool) {
	leaf, offset, ok := b.rope.Locate(b.caret)
	if !ok {
		return utf8.RuneError, false
	}
	if utf8.FullRuneInString(leaf[offset:]) {
		r, _ := utf8.DecodeRuneInString(leaf[offset:])
		return r, true
	}

	p := make([]byte, utf8.UTFMax)
	n, _ := b.rope.ReadAt(p, int64(b.caret))
	r, _ := utf8.DecodeRune(p[:n])
	return r, true
}

func (b *Buffer) MoveLeft() {
	if b.caret == 0 {
		return
	}
	b.caret--
	b.alignCaret()
}

func (b *Buffer) MoveRight() {
	if b.caret >= b.rope.Len() {
		return
	}
	b.caret++
	for b.caret < b.rope.Len() && !b.atRuneStart(b.caret) {
		b.caret++
	}
}

func (b *Buffer) MoveUp() {
	row, col := b.Position()
	if row == 0 {
		return
	}
	b.moveToLine(row-1, col)
}

func (b *Buffer) MoveDown() {
	row, col := b.Position()
	if row+1 >= len(b.lineStarts) {
		return
	}
	b.moveToLine(row+1, col)
}

// MoveHome moves the caret to the start of its line.
func (b *Buffer) MoveHome() {
	row, _ := b.Position()
	b.caret = b.lineStarts[row]
}

// MoveEnd moves the caret to the end of its line.
func (b *Buffer) MoveEnd() {
	row, _ := b.Position()
	b.caret = b.lineStarts[row] + b.lineLen(row)
}

// MoveToEnd moves the caret behind the last character, where typed text goes.
func (b *Buffer) MoveToEnd() {
	b.caret = b.rope.Len()
}

func (b *Buffer) moveToLine(row, col int) {
	b.caret = b.lineStarts[row] + min(col, b.lineLen(row))
	b.alignCaret()
}

func (b *Buffer) alignCaret() {
	for b.caret > 0 && b.caret < b.rope.Len() && !b.atRuneStart(b.caret) {
		b.caret--
	}
}

func (b *Buffer) atRuneStart(offset int) bool {
	c, ok := b.rope.ByteAt(offset)
	return !ok || utf8.RuneStart(c)
}

// Position returns the zero-based line and byte column of the caret.
func (b *Buffer) Position() (row, col int) {
	row = sort.SearchInts(b.lineStarts, b.caret+1) - 1
	return row, b.caret - b.lineStarts[row]
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// Line returns the text of line row without its newline.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[row]
	return b.rope.Slice(rope.Interval{Lo: start, Hi: start + b.lineLen(row)})
}

// LineStart returns the offset of the first byte of line row.
func (b *Buffer) LineStart(row int) int {
	row = max(0, min(row, len(b.lineStarts)-1))
	return b.lineStarts[row]
}

// lineLen is the length of line row excluding the newline.
func (b *Buffer) lineLen(row int) int {
	if row+1 < len(b.lineStarts) {
		return b.lineStarts[row+1] - 1 - b.lineStarts[row]
	}
	return b.rope.Len() - b.lineStarts[row]
}
