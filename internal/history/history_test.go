// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package history

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jacktogon/gotools/internal/fileio"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStoreFromDSN("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("NewStoreFromDSN error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStoreFromDSN("oracle", "whatever"); err == nil {
		t.Fatal("accepted unsupported database type")
	}
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	samples := []*Sample{
		{Kind: KindPing, Target: "10.0.0.1", Reachable: true, TookMS: 12, CreatedAt: base},
		{Kind: KindBandwidth, Target: "eth0", Down: 1.5e6, Up: 2.5e5, CreatedAt: base.Add(time.Minute)},
		{Kind: KindPing, Target: "10.0.0.2", Reachable: false, TookMS: 1000, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, sm := range samples {
		if err := s.Add(ctx, sm); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	all, err := s.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].Target != "10.0.0.2" {
		t.Fatalf("first sample = %s, want newest", all[0].Target)
	}

	pings, err := s.List(ctx, KindPing, 0)
	if err != nil {
		t.Fatalf("List(ping) failed: %v", err)
	}
	if len(pings) != 2 {
		t.Fatalf("ping samples = %d, want 2", len(pings))
	}

	limited, err := s.List(ctx, "", 1)
	if err != nil {
		t.Fatalf("List(limit) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited samples = %d, want 1", len(limited))
	}
}

func TestAddStampsCreatedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sm := &Sample{Kind: KindPing, Target: "host"}
	if err := s.Add(ctx, sm); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sm.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not stamped")
	}
}

func TestAddRejectsEmptyKind(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add(context.Background(), &Sample{Target: "host"}); err == nil {
		t.Fatal("accepted sample without kind")
	}
}

func TestPurge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	if err := s.Add(ctx, &Sample{Kind: KindPing, Target: "old", CreatedAt: old}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(ctx, &Sample{Kind: KindPing, Target: "new"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	n, err := s.Purge(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("purged %d samples, want 1", n)
	}

	left, err := s.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(left) != 1 || left[0].Target != "new" {
		t.Fatalf("unexpected survivors: %+v", left)
	}
}

func TestPurgeSurfacesRowsAffectedError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, &Sample{Kind: KindPing, Target: "old"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	orig := rowsAffected
	rowsAffected = func(res sql.Result) (int64, error) {
		return 0, errors.New("driver does not report counts")
	}
	t.Cleanup(func() { rowsAffected = orig })

	if _, err := s.Purge(ctx, time.Now().Add(time.Hour)); err == nil {
		t.Fatal("expected RowsAffected error to surface")
	}
}

func TestExportCSV(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, &Sample{Kind: KindBandwidth, Target: "eth0", Down: 100, Up: 50}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "samples.csv")
	n, err := s.ExportCSV(ctx, path, "", false)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("exported %d samples, want 1", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "id,kind,target,") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "bandwidth,eth0,100,50") {
		t.Fatalf("missing sample row: %q", out)
	}
}

func TestExportCSVCompressed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, &Sample{Kind: KindPing, Target: "10.0.0.9", Reachable: true}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "samples.csv")
	if _, err := s.ExportCSV(ctx, path, "", true); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("plain csv left behind after compression")
	}

	restored := filepath.Join(t.TempDir(), "restored.csv")
	if err := fileio.UnpackFile(path+".zst", restored); err != nil {
		t.Fatalf("UnpackFile failed: %v", err)
	}
	data, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("failed to read restored export: %v", err)
	}
	if !strings.Contains(string(data), "10.0.0.9") {
		t.Fatalf("restored export missing sample: %q", data)
	}
}
