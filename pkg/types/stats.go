// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// FileRecord describes one file of a batch run. EndPage is always
// StartPage + Pages - 1.
type FileRecord struct {
	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`
	Pages      int    `json:"pages" yaml:"pages"`
	StartPage  int    `json:"start_page" yaml:"start_page"`
	EndPage    int    `json:"end_page" yaml:"end_page"`
}

// BatchStats accumulates the outcome of a batch run. Processed, Failed, and
// Skipped always sum to the number of files considered. Files holds one
// record per successfully processed file, in processing order.
type BatchStats struct {
	Processed  int          `json:"processed" yaml:"processed"`
	Failed     int          `json:"failed" yaml:"failed"`
	Skipped    int          `json:"skipped" yaml:"skipped"`
	TotalPages int          `json:"total_pages" yaml:"total_pages"`
	Files      []FileRecord `json:"files" yaml:"files"`

	// Message carries a human-readable status for non-error outcomes such as
	// an empty input directory.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Total returns the number of files considered.
func (s BatchStats) Total() int {
	return s.Processed + s.Failed + s.Skipped
}

// HasFailures reports whether any file failed.
func (s BatchStats) HasFailures() bool {
	return s.Failed > 0
}

// Summary renders a one-line batch summary.
func (s BatchStats) Summary() string {
	return fmt.Sprintf("%d processed, %d failed, %d skipped (total pages: %d)",
		s.Processed, s.Failed, s.Skipped, s.TotalPages)
}
