// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge concatenates PDF documents into one output, optionally
// stamping a running page number across the whole result.
package merge

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/pdfsmith/internal/engine"
	"github.com/pdiddy/pdfsmith/internal/fsutil"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

// ErrNoFilesFound indicates the merge input resolved to an empty file set.
var ErrNoFilesFound = errors.New("no PDF files found")

// Options control merging. Zero values resolve to the defaults: font size
// 12, right and bottom margins 50, preserving profile.
type Options struct {
	AddPageNumbers bool
	FontSize       float64
	RightMargin    float64
	BottomMargin   float64
	Profile        types.SaveProfile
}

func (o Options) withDefaults() Options {
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.RightMargin <= 0 {
		o.RightMargin = 50
	}
	if o.BottomMargin <= 0 {
		o.BottomMargin = 50
	}
	return o
}

// Folder merges every *.pdf directly under dir, in lexicographic filename
// order, into outputPath. Returns the total number of pages merged.
func Folder(eng engine.Engine, dir, outputPath string, opts Options, w io.Writer) (int, error) {
	files, err := fsutil.ListPDFs(dir)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoFilesFound, dir)
	}
	return Files(eng, files, outputPath, opts, w)
}

// Files merges the given paths, in list order, into outputPath. Each input
// document's pages are appended in a single bulk insert, so the output page
// order is exactly the concatenation of the inputs. With AddPageNumbers set,
// every page is stamped with a single counter running from 1 across all
// inputs; the counter advances by the page count either way, and the total
// is returned. Inputs are opened one at a time and closed before the next;
// any input failure aborts the merge since a partial output would be wrong.
func Files(eng engine.Engine, paths []string, outputPath string, opts Options, w io.Writer) (int, error) {
	opts = opts.withDefaults()
	if len(paths) == 0 {
		return 0, ErrNoFilesFound
	}

	out := eng.NewMerge()
	defer out.Close()

	counter := 1
	for _, p := range paths {
		added, err := appendOne(eng, out, p)
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(w, "added: %s (%d pages)\n", filepath.Base(p), added)

		if !opts.AddPageNumbers {
			counter += added
			continue
		}
		for i := out.PageCount() - added; i < out.PageCount(); i++ {
			dim, err := out.PageDim(i)
			if err != nil {
				return 0, err
			}
			x := dim.Width - opts.RightMargin
			y := dim.Height - opts.BottomMargin
			if err := out.InsertText(i, x, y, strconv.Itoa(counter), opts.FontSize); err != nil {
				return 0, fmt.Errorf("stamping merged page %d: %w", i+1, err)
			}
			counter++
		}
	}

	if err := fsutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return 0, err
	}
	if err := out.SaveAs(outputPath, opts.Profile); err != nil {
		return 0, err
	}

	total := counter - 1
	fmt.Fprintf(w, "merged %d files into %s (%d pages)\n", len(paths), outputPath, total)
	return total, nil
}

// appendOne opens path, bulk-appends its pages to out, and closes the input
// handle regardless of outcome.
func appendOne(eng engine.Engine, out engine.MergeDocument, path string) (int, error) {
	src, err := eng.Open(path)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	added := src.PageCount()
	if err := out.Append(src); err != nil {
		return 0, fmt.Errorf("appending %s: %w", path, err)
	}
	return added, nil
}
