// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package fileio

import (
	"fmt"
	"io"
	"os"
)

// ChunkReader yields a file's contents in chunks of at most chunkSize bytes.
type ChunkReader struct {
	f    *os.File
	size int
}

// NewChunkReader opens path for chunked reading. Callers must Close it.
func NewChunkReader(path string, chunkSize int) (*ChunkReader, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be > 0, got %d", chunkSize)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &ChunkReader{f: f, size: chunkSize}, nil
}

// Next returns the next chunk, or io.EOF when the file is exhausted. The
// returned slice is freshly allocated and safe to retain.
func (r *ChunkReader) Next() ([]byte, error) {
	buf := make([]byte, r.size)
	n, err := io.ReadFull(r.f, buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return nil, err
}

// Close releases the underlying file.
func (r *ChunkReader) Close() error {
	return r.f.Close()
}

// Chunks walks a file chunk by chunk, invoking fn for each. Iteration stops
// at the first error fn returns.
func Chunks(path string, chunkSize int, fn func(chunk []byte) error) error {
	r, err := NewChunkReader(path, chunkSize)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for {
		chunk, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read chunk from %s: %w", path, err)
		}
		if err := fn(chunk); err != nil {
			return err
		}
	}
}
