// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// ErrHeaderMismatch is returned when appending a row to a CSV file whose
// existing header differs from the one supplied. The caller decides whether
// to overwrite; AppendCSV never destroys data on its own.
var ErrHeaderMismatch = errors.New("csv header mismatch")

// AppendCSV appends a row to a CSV file, writing the header first when the
// file is new or empty. With overwrite set the file is truncated and
// rewritten as header plus row. An existing file with a different header
// yields ErrHeaderMismatch.
func AppendCSV(path string, header, row []string, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory for %s: %w", path, err)
	}

	writeHeader := overwrite
	if !overwrite {
		existing, err := readCSVHeader(path)
		switch {
		case errors.Is(err, os.ErrNotExist) || errors.Is(err, io.EOF):
			writeHeader = true
		case err != nil:
			return err
		case !slices.Equal(existing, header):
			return fmt.Errorf("%w: %s has %v, want %v", ErrHeaderMismatch, path, existing, header)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("failed to write header to %s: %w", path, err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write row to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

func readCSVHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, err
	}
	return header, nil
}
