// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Anchor is one of six named page positions for a page-number label.
type Anchor string

const (
	BottomRight  Anchor = "bottom-right"
	BottomCenter Anchor = "bottom-center"
	BottomLeft   Anchor = "bottom-left"
	TopRight     Anchor = "top-right"
	TopCenter    Anchor = "top-center"
	TopLeft      Anchor = "top-left"
)

// ParseAnchor maps a position string to an Anchor. Unrecognized values fall
// back to bottom-right rather than erroring; the lenient policy is part of
// the operation contract.
func ParseAnchor(s string) Anchor {
	switch Anchor(s) {
	case BottomRight, BottomCenter, BottomLeft, TopRight, TopCenter, TopLeft:
		return Anchor(s)
	}
	return BottomRight
}

// Point computes the label insertion point for a page of the given width and
// height. The y coordinate is measured from the top edge of the page.
// Right-aligned anchors sit at width-margin, left-aligned at margin, centered
// at width/2; bottom anchors at height-margin, top anchors at margin.
func (a Anchor) Point(width, height, margin float64) (x, y float64) {
	switch a {
	case BottomRight:
		return width - margin, height - margin
	case BottomCenter:
		return width / 2, height - margin
	case BottomLeft:
		return margin, height - margin
	case TopRight:
		return width - margin, margin
	case TopCenter:
		return width / 2, margin
	case TopLeft:
		return margin, margin
	}
	return width - margin, height - margin
}
