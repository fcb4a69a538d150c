// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fsutil holds the small filesystem helpers shared by the batch
// operations: PDF discovery, output-name derivation, and size inspection.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListPDFs returns the files matching *.pdf directly under dir (no recursive
// descent), sorted lexicographically by filename. The sort is a plain byte
// sort, not numeric-aware: "file10.pdf" orders before "file2.pdf". Batch and
// merge ordering depend on this, so it is pinned by tests.
func ListPDFs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing PDFs in %s: %w", dir, err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return filepath.Base(matches[i]) < filepath.Base(matches[j])
	})
	return matches, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// DeriveOutput maps an input path to outputDir/{stem}{suffix}. Existing
// outputs are overwritten by the operations without confirmation.
func DeriveOutput(inputPath, outputDir, suffix string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+suffix)
}

// FileSizeMB returns the size of the file at path in megabytes.
func FileSizeMB(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return float64(info.Size()) / (1024 * 1024), nil
}
