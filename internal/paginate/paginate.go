// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paginate stamps page-number labels on PDF documents: single files,
// and whole directories with an optional page counter that runs continuously
// across file boundaries.
package paginate

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/pdfsmith/internal/engine"
	"github.com/pdiddy/pdfsmith/internal/fsutil"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

// outputSuffix is appended to the input filename stem for batch outputs.
const outputSuffix = "_numbered.pdf"

// Options control pagination. Zero values resolve to the defaults: anchor
// bottom-right, start page 1, font size 12, margin 50, preserving profile.
type Options struct {
	Anchor     types.Anchor
	StartPage  int
	FontSize   float64
	Margin     float64
	Profile    types.SaveProfile
	Continuous bool
}

func (o Options) withDefaults() Options {
	if o.Anchor == "" {
		o.Anchor = types.BottomRight
	}
	if o.StartPage <= 0 {
		o.StartPage = 1
	}
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.Margin <= 0 {
		o.Margin = 50
	}
	return o
}

// StampPageNumber places the decimal label for number on page pageIdx
// (0-based) at the anchor position computed from the page geometry. It
// mutates only that page.
func StampPageNumber(doc engine.Document, pageIdx, number int, fontSize, margin float64, anchor types.Anchor) error {
	dim, err := doc.PageDim(pageIdx)
	if err != nil {
		return err
	}
	x, y := anchor.Point(dim.Width, dim.Height, margin)
	return doc.InsertText(pageIdx, x, y, strconv.Itoa(number), fontSize)
}

// File numbers every page of inputPath with labels StartPage, StartPage+1,
// ... and writes the result to outputPath under the configured save profile.
// The output directory is created if absent. Returns the number of pages
// stamped.
func File(eng engine.Engine, inputPath, outputPath string, opts Options) (int, error) {
	opts = opts.withDefaults()
	return paginateOne(eng, inputPath, outputPath, opts.StartPage, opts)
}

// paginateOne opens, stamps, and saves a single document. The input handle
// is closed on every path out.
func paginateOne(eng engine.Engine, inputPath, outputPath string, startPage int, opts Options) (int, error) {
	doc, err := eng.Open(inputPath)
	if err != nil {
		return 0, err
	}
	defer doc.Close()

	n := doc.PageCount()
	for i := 0; i < n; i++ {
		if err := StampPageNumber(doc, i, startPage+i, opts.FontSize, opts.Margin, opts.Anchor); err != nil {
			return 0, fmt.Errorf("stamping page %d of %s: %w", i+1, inputPath, err)
		}
	}

	if err := fsutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return 0, err
	}
	if err := doc.SaveAs(outputPath, opts.Profile); err != nil {
		return 0, err
	}
	return n, nil
}

// Batch numbers every *.pdf directly under inputDir, in lexicographic
// filename order, writing {stem}_numbered.pdf files to outputDir. With
// Continuous set, labels keep incrementing across files; a failed file does
// not advance the counter, so the file after it starts where the failed
// file would have. Per-file failures are contained: the loop always runs to
// the end. Status lines are written to w.
func Batch(eng engine.Engine, inputDir, outputDir string, opts Options, w io.Writer) types.BatchStats {
	opts = opts.withDefaults()
	var stats types.BatchStats

	files, err := fsutil.ListPDFs(inputDir)
	if err != nil {
		stats.Message = err.Error()
		fmt.Fprintln(w, stats.Message)
		return stats
	}
	if len(files) == 0 {
		stats.Message = fmt.Sprintf("no PDF files found in %s", inputDir)
		fmt.Fprintln(w, stats.Message)
		return stats
	}

	current := opts.StartPage
	for _, f := range files {
		fileStart := opts.StartPage
		if opts.Continuous {
			fileStart = current
		}

		out := fsutil.DeriveOutput(f, outputDir, outputSuffix)
		pages, err := paginateOne(eng, f, out, fileStart, opts)
		if err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", filepath.Base(f), err)
			stats.Failed++
			continue
		}

		stats.Processed++
		stats.TotalPages += pages
		stats.Files = append(stats.Files, types.FileRecord{
			InputPath:  f,
			OutputPath: out,
			Pages:      pages,
			StartPage:  fileStart,
			EndPage:    fileStart + pages - 1,
		})
		if opts.Continuous {
			current += pages
		}
		fmt.Fprintf(w, "numbered: %s (pages %d-%d)\n", filepath.Base(f), fileStart, fileStart+pages-1)
	}

	fmt.Fprintf(w, "\nBatch summary: %s\n", stats.Summary())
	return stats
}
