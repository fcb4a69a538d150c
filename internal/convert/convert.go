// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements PDF-to-text and PDF-to-Word conversion with
// pluggable backends. The conversion itself is delegated entirely to an
// external tool; this package owns output placement, skip-if-exists, and
// batch driving.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdfsmith/internal/fsutil"
)

// Converter transforms a PDF file into another document format. Different
// backends (pdftotext, pdf2docx) implement this interface.
type Converter interface {
	// Convert reads the PDF at pdfPath and writes the converted document
	// to outPath.
	Convert(pdfPath, outPath string) error

	// Ext returns the output file extension, including the dot.
	Ext() string
}

// Status is the outcome of a single conversion.
type Status string

const (
	StatusConverted Status = "converted"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// File converts a single PDF, writing the result to outputDir under the
// input's stem with the backend's extension. If the output already exists,
// the conversion is skipped.
func File(c Converter, pdfPath, outputDir string, w io.Writer) Status {
	base := filepath.Base(pdfPath)
	outPath := fsutil.DeriveOutput(pdfPath, outputDir, c.Ext())

	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(w, "skipped:   %s (already exists)\n", base)
		return StatusSkipped
	}

	if err := fsutil.EnsureDir(outputDir); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
		return StatusFailed
	}

	if err := c.Convert(pdfPath, outPath); err != nil {
		fmt.Fprintf(w, "failed:    %s (%v)\n", base, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", base, filepath.Base(outPath))
	return StatusConverted
}

// Batch converts a list of PDFs, printing per-file status to w and
// returning a summary. Failures are contained per file.
func Batch(c Converter, pdfPaths []string, outputDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pdfPaths {
		switch File(c, p, outputDir, w) {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// Dir converts every *.pdf directly under inputDir, in lexicographic
// filename order, and delegates to Batch.
func Dir(c Converter, inputDir, outputDir string, w io.Writer) (BatchResult, error) {
	files, err := fsutil.ListPDFs(inputDir)
	if err != nil {
		return BatchResult{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "no PDF files found in %s\n", inputDir)
		return BatchResult{}, nil
	}
	return Batch(c, files, outputDir, w), nil
}
