// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze inspects PDF documents and reports their basic properties.
package analyze

import (
	"github.com/pdiddy/pdfsmith/internal/engine"
	"github.com/pdiddy/pdfsmith/internal/fsutil"
)

// maxSampledPages caps how many page geometries are reported.
const maxSampledPages = 5

// PageSize describes one page's geometry in points.
type PageSize struct {
	Page   int     `json:"page" yaml:"page"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Info is the analysis report for one document.
type Info struct {
	Filename   string     `json:"filename" yaml:"filename"`
	FileSizeMB float64    `json:"file_size_mb" yaml:"file_size_mb"`
	Pages      int        `json:"pages" yaml:"pages"`
	PageSizes  []PageSize `json:"page_sizes" yaml:"page_sizes"`
}

// Inspect opens the document at path and reports its size, page count, and
// the geometry of its first pages. The handle is closed before returning.
func Inspect(eng engine.Engine, path string) (Info, error) {
	sizeMB, err := fsutil.FileSizeMB(path)
	if err != nil {
		return Info{}, err
	}

	doc, err := eng.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer doc.Close()

	info := Info{
		Filename:   path,
		FileSizeMB: sizeMB,
		Pages:      doc.PageCount(),
	}

	sampled := doc.PageCount()
	if sampled > maxSampledPages {
		sampled = maxSampledPages
	}
	for i := 0; i < sampled; i++ {
		dim, err := doc.PageDim(i)
		if err != nil {
			return Info{}, err
		}
		info.PageSizes = append(info.PageSizes, PageSize{
			Page:   i + 1,
			Width:  dim.Width,
			Height: dim.Height,
		})
	}
	return info, nil
}
