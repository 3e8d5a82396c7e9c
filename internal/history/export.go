// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jacktogon/gotools/internal/fileio"
)

var exportHeader = []string{"id", "kind", "target", "down_bps", "up_bps", "reachable", "took_ms", "created_at"}

// ExportCSV writes all samples of kind (empty for all kinds) to a CSV file.
// When compress is set the file is additionally packed to <path>.zst and the
// plain CSV removed.
func (s *Store) ExportCSV(ctx context.Context, path, kind string, compress bool) (int, error) {
	samples, err := s.List(ctx, kind, 0)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	for _, sm := range samples {
		record := []string{
			strconv.FormatInt(sm.ID, 10),
			sm.Kind,
			sm.Target,
			strconv.FormatFloat(sm.Down, 'f', -1, 64),
			strconv.FormatFloat(sm.Up, 'f', -1, 64),
			strconv.FormatBool(sm.Reachable),
			strconv.FormatInt(sm.TookMS, 10),
			sm.CreatedAt.UTC().Format("2006-01-02 15:04:05.000 MST"),
		}
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return 0, fmt.Errorf("failed to write sample %d: %w", sm.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("failed to flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close export file: %w", err)
	}

	if compress {
		if err := fileio.PackFile(path, path+".zst"); err != nil {
			return 0, err
		}
		if err := os.Remove(path); err != nil {
			return 0, fmt.Errorf("failed to remove plain export: %w", err)
		}
	}
	return len(samples), nil
}
