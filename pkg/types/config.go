// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaginateConfig holds settings for the pagination operations.
type PaginateConfig struct {
	// Position is the label anchor (e.g. "bottom-right"); see ParseAnchor.
	Position string `json:"position" yaml:"position" mapstructure:"position"`

	// StartPage is the first page label (default 1).
	StartPage int `json:"start_page" yaml:"start_page" mapstructure:"start_page"`

	// FontSize is the label font size in points (default 12).
	FontSize float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`

	// Margin is the distance from the page edges in points (default 50).
	Margin float64 `json:"margin" yaml:"margin" mapstructure:"margin"`

	// PreserveSignatures selects the preserving save profile (default true).
	PreserveSignatures bool `json:"preserve_signatures" yaml:"preserve_signatures" mapstructure:"preserve_signatures"`

	// Continuous keeps the page counter running across files in a batch
	// instead of restarting at StartPage for each file.
	Continuous bool `json:"continuous" yaml:"continuous" mapstructure:"continuous"`
}

// MergeConfig holds settings for the merge operations.
type MergeConfig struct {
	// AddPageNumbers stamps a running page number on every merged page.
	AddPageNumbers bool `json:"add_page_numbers" yaml:"add_page_numbers" mapstructure:"add_page_numbers"`

	// FontSize is the label font size in points (default 12).
	FontSize float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`

	// RightMargin and BottomMargin position the label relative to the
	// bottom-right page corner (defaults 50).
	RightMargin  float64 `json:"right_margin" yaml:"right_margin" mapstructure:"right_margin"`
	BottomMargin float64 `json:"bottom_margin" yaml:"bottom_margin" mapstructure:"bottom_margin"`

	// PreserveSignatures selects the preserving save profile (default true).
	PreserveSignatures bool `json:"preserve_signatures" yaml:"preserve_signatures" mapstructure:"preserve_signatures"`
}

// OptimizePreset selects the optimization aggressiveness.
type OptimizePreset string

const (
	PresetStandard    OptimizePreset = "standard"
	PresetAggressive  OptimizePreset = "aggressive"
	PresetHighQuality OptimizePreset = "high-quality"
)

// OptimizeConfig holds settings for the optimization operations.
type OptimizeConfig struct {
	// Preset selects the optimization level: standard, aggressive, or
	// high-quality.
	Preset OptimizePreset `json:"preset" yaml:"preset" mapstructure:"preset"`

	// MaxFileSizeMB skips batch inputs larger than this size (default 100).
	MaxFileSizeMB float64 `json:"max_file_size_mb" yaml:"max_file_size_mb" mapstructure:"max_file_size_mb"`

	// GhostscriptPath is the gs binary to invoke (default "gs").
	GhostscriptPath string `json:"ghostscript_path" yaml:"ghostscript_path" mapstructure:"ghostscript_path"`
}

// ConversionBackend identifies the PDF conversion tool.
type ConversionBackend string

const (
	BackendPdftotext ConversionBackend = "pdftotext"
	BackendPdf2docx  ConversionBackend = "pdf2docx"
)

// ConvertConfig holds settings for the conversion operations.
type ConvertConfig struct {
	// Backend selects the conversion tool: pdftotext or pdf2docx.
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`
}

// ToolConfig groups all operation configurations. Its shape mirrors the
// config file: top-level sections paginate, merge, optimize, and convert.
type ToolConfig struct {
	Paginate PaginateConfig `json:"paginate" yaml:"paginate" mapstructure:"paginate"`
	Merge    MergeConfig    `json:"merge" yaml:"merge" mapstructure:"merge"`
	Optimize OptimizeConfig `json:"optimize" yaml:"optimize" mapstructure:"optimize"`
	Convert  ConvertConfig  `json:"convert" yaml:"convert" mapstructure:"convert"`
}

// DefaultToolConfig returns the configuration used when no config file, flag,
// or environment variable overrides a setting.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		Paginate: PaginateConfig{
			Position:           string(BottomRight),
			StartPage:          1,
			FontSize:           12,
			Margin:             50,
			PreserveSignatures: true,
		},
		Merge: MergeConfig{
			FontSize:           12,
			RightMargin:        50,
			BottomMargin:       50,
			PreserveSignatures: true,
		},
		Optimize: OptimizeConfig{
			Preset:          PresetStandard,
			MaxFileSizeMB:   100,
			GhostscriptPath: "gs",
		},
		Convert: ConvertConfig{
			Backend: BackendPdftotext,
		},
	}
}
