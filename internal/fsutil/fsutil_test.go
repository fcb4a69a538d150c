// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListPDFs_LexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "file2.pdf", "file10.pdf", "a.pdf", "notes.txt")

	got, err := ListPDFs(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Plain byte sort: file10 before file2. This ordering is a contract,
	// not an accident.
	want := []string{"a.pdf", "file10.pdf", "file2.pdf"}
	if len(got) != len(want) {
		t.Fatalf("got %d files, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		if filepath.Base(got[i]) != w {
			t.Errorf("position %d = %s, want %s", i, filepath.Base(got[i]), w)
		}
	}
}

func TestListPDFs_NonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "top.pdf")
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, sub, "deep.pdf")

	got, err := ListPDFs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "top.pdf" {
		t.Errorf("expected only top.pdf, got %v", got)
	}
}

func TestListPDFs_Empty(t *testing.T) {
	got, err := ListPDFs(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no files, got %v", got)
	}
}

func TestDeriveOutput(t *testing.T) {
	got := DeriveOutput("/in/report.pdf", "/out", "_numbered.pdf")
	want := filepath.Join("/out", "report_numbered.pdf")
	if got != want {
		t.Errorf("DeriveOutput = %s, want %s", got, want)
	}

	got = DeriveOutput("scan.pdf", "/out", ".txt")
	want = filepath.Join("/out", "scan.txt")
	if got != want {
		t.Errorf("DeriveOutput = %s, want %s", got, want)
	}
}

func TestFileSizeMB(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.bin")
	if err := os.WriteFile(path, make([]byte, 1024*1024), 0o644); err != nil {
		t.Fatal(err)
	}
	size, err := FileSizeMB(path)
	if err != nil {
		t.Fatal(err)
	}
	if size != 1 {
		t.Errorf("size = %v MB, want 1", size)
	}

	if _, err := FileSizeMB(filepath.Join(dir, "missing.bin")); err == nil {
		t.Error("expected error for missing file")
	}
}
