// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestAnchorPoint(t *testing.T) {
	// All cases use a 600x800 page with a 50pt margin.
	tests := []struct {
		anchor Anchor
		wantX  float64
		wantY  float64
	}{
		{BottomRight, 550, 750},
		{BottomCenter, 300, 750},
		{BottomLeft, 50, 750},
		{TopRight, 550, 50},
		{TopCenter, 300, 50},
		{TopLeft, 50, 50},
		{Anchor("middle-ish"), 550, 750}, // unknown falls back to bottom-right
	}
	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			x, y := tt.anchor.Point(600, 800, 50)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Point() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in   string
		want Anchor
	}{
		{"bottom-right", BottomRight},
		{"top-center", TopCenter},
		{"bottom-left", BottomLeft},
		{"", BottomRight},
		{"center", BottomRight},
		{"BOTTOM-RIGHT", BottomRight}, // case-sensitive: falls back
	}
	for _, tt := range tests {
		if got := ParseAnchor(tt.in); got != tt.want {
			t.Errorf("ParseAnchor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProfileFor(t *testing.T) {
	if ProfileFor(true) != ProfilePreserving {
		t.Error("preserve=true should select the preserving profile")
	}
	if ProfileFor(false) != ProfileStandard {
		t.Error("preserve=false should select the standard profile")
	}
}

func TestBatchStatsTotals(t *testing.T) {
	s := BatchStats{Processed: 3, Failed: 1, Skipped: 2, TotalPages: 17}
	if s.Total() != 6 {
		t.Errorf("Total() = %d, want 6", s.Total())
	}
	if !s.HasFailures() {
		t.Error("HasFailures should be true")
	}
	want := "3 processed, 1 failed, 2 skipped (total pages: 17)"
	if s.Summary() != want {
		t.Errorf("Summary() = %q, want %q", s.Summary(), want)
	}
}
