// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine abstracts the external PDF engine behind a narrow interface:
// open, page count, page geometry, text insertion, bulk page append, and
// save-with-profile. The processing core depends only on these interfaces so
// it can be exercised against fakes without a real PDF engine.
package engine

import (
	"fmt"

	"github.com/pdiddy/pdfsmith/pkg/types"
)

// Dim is a page size in points.
type Dim struct {
	Width  float64
	Height float64
}

// Document is an open PDF document. Handles are scoped to one processing
// step: opened at its start and closed at its end, never retained across
// steps.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// PageDim returns the size of page i (0-based).
	PageDim(i int) (Dim, error)

	// InsertText places text on page i (0-based) at (x, y), where y is
	// measured from the top edge of the page.
	InsertText(i int, x, y float64, text string, fontSize float64) error

	// SaveAs persists the document to path under the given save profile.
	SaveAs(path string, profile types.SaveProfile) error

	// Close releases the handle. Safe to call after a failed SaveAs.
	Close() error
}

// MergeDocument is an output document under construction. Pages arrive only
// through Append; geometry and text insertion address the growing page range.
type MergeDocument interface {
	Document

	// Append bulk-inserts all pages of src at the end of the document,
	// preserving src's internal page order.
	Append(src Document) error
}

// Engine opens existing documents and creates merge outputs.
type Engine interface {
	Open(path string) (Document, error)
	NewMerge() MergeDocument
}

// OpenError indicates the input path is missing, unreadable, or not a valid
// PDF. In batch context it is counted as a per-file failure.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SaveError indicates the output could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
