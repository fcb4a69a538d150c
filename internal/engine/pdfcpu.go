// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdiddy/pdfsmith/pkg/types"
)

// PDFCPU is the production Engine backed by the pdfcpu library.
type PDFCPU struct {
	conf *model.Configuration
}

// NewPDFCPU returns an Engine using pdfcpu with its default configuration.
func NewPDFCPU() *PDFCPU {
	return &PDFCPU{conf: model.NewDefaultConfiguration()}
}

// Open reads and validates the PDF at path.
func (e *PDFCPU) Open(path string) (Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	// Text stamping needs an optimized xref table. This pass is in-memory
	// bookkeeping; what reaches disk is decided by the save profile.
	if err := api.OptimizeContext(ctx); err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	pd, err := ctx.PageDims()
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	dims := make([]Dim, len(pd))
	for i, d := range pd {
		dims[i] = Dim{Width: d.Width, Height: d.Height}
	}
	return &document{path: path, conf: e.conf, ctx: ctx, dims: dims}, nil
}

// NewMerge returns an empty merge output document.
func (e *PDFCPU) NewMerge() MergeDocument {
	return &mergeDocument{conf: e.conf}
}

// document wraps a pdfcpu context for a document opened from disk.
type document struct {
	path string
	conf *model.Configuration
	ctx  *model.Context
	dims []Dim
}

func (d *document) PageCount() int { return len(d.dims) }

func (d *document) PageDim(i int) (Dim, error) {
	if i < 0 || i >= len(d.dims) {
		return Dim{}, fmt.Errorf("page index %d out of range [0,%d)", i, len(d.dims))
	}
	return d.dims[i], nil
}

func (d *document) InsertText(i int, x, y float64, text string, fontSize float64) error {
	dim, err := d.PageDim(i)
	if err != nil {
		return err
	}
	// pdfcpu offsets are bottom-origin; callers pass y from the top edge.
	wm, err := textWatermark(text, fontSize, x, dim.Height-y)
	if err != nil {
		return err
	}
	return pdfcpu.AddWatermarks(d.ctx, pdftypes.IntSet{i + 1: true}, wm)
}

func (d *document) SaveAs(path string, profile types.SaveProfile) error {
	if err := api.WriteContextFile(d.ctx, path); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if profile == types.ProfileStandard {
		if err := api.OptimizeFile(path, "", d.conf); err != nil {
			return &SaveError{Path: path, Err: err}
		}
	}
	return nil
}

func (d *document) Close() error {
	d.ctx = nil
	return nil
}

// pendingStamp is a text insertion staged on a merge output before its pages
// exist on disk.
type pendingStamp struct {
	page     int // 0-based index within the merged output
	x, y     float64
	text     string
	fontSize float64
}

// mergeDocument accumulates input paths and staged stamps; the actual merge
// and stamping happen in SaveAs, in one pass, so the preserving profile
// writes the output exactly once.
type mergeDocument struct {
	conf   *model.Configuration
	inputs []string
	dims   []Dim
	stamps []pendingStamp
}

func (m *mergeDocument) Append(src Document) error {
	d, ok := src.(*document)
	if !ok {
		return fmt.Errorf("cannot append %T to a pdfcpu merge document", src)
	}
	m.inputs = append(m.inputs, d.path)
	m.dims = append(m.dims, d.dims...)
	return nil
}

func (m *mergeDocument) PageCount() int { return len(m.dims) }

func (m *mergeDocument) PageDim(i int) (Dim, error) {
	if i < 0 || i >= len(m.dims) {
		return Dim{}, fmt.Errorf("page index %d out of range [0,%d)", i, len(m.dims))
	}
	return m.dims[i], nil
}

func (m *mergeDocument) InsertText(i int, x, y float64, text string, fontSize float64) error {
	if i < 0 || i >= len(m.dims) {
		return fmt.Errorf("page index %d out of range [0,%d)", i, len(m.dims))
	}
	m.stamps = append(m.stamps, pendingStamp{page: i, x: x, y: y, text: text, fontSize: fontSize})
	return nil
}

func (m *mergeDocument) SaveAs(path string, profile types.SaveProfile) error {
	if len(m.inputs) == 0 {
		return &SaveError{Path: path, Err: errors.New("no input documents appended")}
	}
	if err := api.MergeCreateFile(m.inputs, path, false, m.conf); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if len(m.stamps) > 0 {
		if err := m.applyStamps(path); err != nil {
			return &SaveError{Path: path, Err: err}
		}
	}
	if profile == types.ProfileStandard {
		if err := api.OptimizeFile(path, "", m.conf); err != nil {
			return &SaveError{Path: path, Err: err}
		}
	}
	return nil
}

func (m *mergeDocument) applyStamps(path string) error {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return err
	}
	if err := api.OptimizeContext(ctx); err != nil {
		return err
	}
	for _, s := range m.stamps {
		dim := m.dims[s.page]
		wm, err := textWatermark(s.text, s.fontSize, s.x, dim.Height-s.y)
		if err != nil {
			return err
		}
		if err := pdfcpu.AddWatermarks(ctx, pdftypes.IntSet{s.page + 1: true}, wm); err != nil {
			return err
		}
	}
	return api.WriteContextFile(ctx, path)
}

func (m *mergeDocument) Close() error {
	m.inputs = nil
	m.dims = nil
	m.stamps = nil
	return nil
}

// textWatermark builds a black Helvetica text stamp anchored at the page's
// bottom-left corner and shifted by (dx, dy) in points, dy upward.
func textWatermark(text string, fontSize, dx, dy float64) (*model.Watermark, error) {
	desc := fmt.Sprintf("font:Helvetica, points:%.0f, scale:1 abs, pos:bl, rot:0, op:1, fillcolor:#000000", fontSize)
	wm, err := pdfcpu.ParseTextWatermarkDetails(text, desc, true, pdftypes.POINTS)
	if err != nil {
		return nil, fmt.Errorf("building text stamp: %w", err)
	}
	wm.Dx = dx
	wm.Dy = dy
	return wm, nil
}
