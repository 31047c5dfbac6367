// Package files loads ropes from disk and writes them back.
package files

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"goditor/rope"
)

// Read streams the file at path into a rope with leaves of leafSize bytes.
func Read(path string, leafSize int) (*rope.Rope, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	writer := rope.NewWriter(leafSize)
	if _, err := io.Copy(writer, reader); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return writer.Rope(), nil
}

// ReadOrEmpty is like Read but returns an empty rope when the file does not
// exist yet.
func ReadOrEmpty(path string, leafSize int) (*rope.Rope, error) {
	r, err := Read(path, leafSize)
	if errors.Is(err, fs.ErrNotExist) {
		return rope.New(), nil
	}
	return r, err
}

// Write truncates the file at path and writes the contents of src to it.
func Write(path string, src io.WriterTo) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	writer := bufio.NewWriter(file)
	if _, err := src.WriteTo(writer); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return file.Close()
}
