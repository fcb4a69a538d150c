// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package optimize shrinks PDF files by delegating the rasterize/recompress
// work to an external engine (Ghostscript). This package owns only the
// batch driving and size accounting; it contains no compression logic.
package optimize

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pdfsmith/internal/fsutil"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

// outputSuffix is appended to the input filename stem for batch outputs.
const outputSuffix = "_optimized.pdf"

// Optimizer recompresses a single PDF. The production implementation shells
// out to Ghostscript; tests substitute a fake.
type Optimizer interface {
	Optimize(inputPath, outputPath string, preset types.OptimizePreset) error
}

// Ghostscript invokes the gs binary with a pdfwrite device.
type Ghostscript struct {
	bin string
}

// NewGhostscript returns an Optimizer using the given gs binary, or "gs"
// when empty.
func NewGhostscript(bin string) *Ghostscript {
	if bin == "" {
		bin = "gs"
	}
	return &Ghostscript{bin: bin}
}

// Optimize runs Ghostscript over inputPath, writing the recompressed
// document to outputPath.
func (g *Ghostscript) Optimize(inputPath, outputPath string, preset types.OptimizePreset) error {
	cmd := exec.Command(g.bin, ghostscriptArgs(outputPath, inputPath, preset)...)
	var stderr bytes.Buffer
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript failed for %s: %s: %w",
			inputPath, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

func ghostscriptArgs(outputPath, inputPath string, preset types.OptimizePreset) []string {
	setting := "/printer"
	switch preset {
	case types.PresetAggressive:
		setting = "/screen"
	case types.PresetHighQuality:
		setting = "/prepress"
	}
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.5",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		fmt.Sprintf("-dPDFSETTINGS=%s", setting),
		fmt.Sprintf("-sOutputFile=%s", outputPath),
		inputPath,
	}
}

// NormalizePreset validates a preset string. Empty input means standard;
// the underscore spelling of high-quality is accepted for compatibility.
func NormalizePreset(s string) (types.OptimizePreset, error) {
	switch strings.ToLower(s) {
	case "", string(types.PresetStandard):
		return types.PresetStandard, nil
	case string(types.PresetAggressive):
		return types.PresetAggressive, nil
	case string(types.PresetHighQuality), "high_quality":
		return types.PresetHighQuality, nil
	}
	return "", fmt.Errorf("preset must be standard, aggressive, or high-quality (got %q)", s)
}

// Result holds the size delta of one optimization.
type Result struct {
	OriginalMB float64
	FinalMB    float64
}

// SavedPercent returns the size reduction as a percentage of the original.
func (r Result) SavedPercent() float64 {
	if r.OriginalMB == 0 {
		return 0
	}
	return (r.OriginalMB - r.FinalMB) / r.OriginalMB * 100
}

// File optimizes a single PDF, creating the output directory if absent, and
// returns the before/after sizes.
func File(opt Optimizer, inputPath, outputPath string, preset types.OptimizePreset) (Result, error) {
	before, err := fsutil.FileSizeMB(inputPath)
	if err != nil {
		return Result{}, err
	}
	if err := fsutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return Result{}, err
	}
	if err := opt.Optimize(inputPath, outputPath, preset); err != nil {
		return Result{}, err
	}
	after, err := fsutil.FileSizeMB(outputPath)
	if err != nil {
		return Result{}, err
	}
	return Result{OriginalMB: before, FinalMB: after}, nil
}

// BatchResult extends the shared batch counters with size totals.
type BatchResult struct {
	types.BatchStats
	TotalOriginalMB float64
	TotalFinalMB    float64
}

// Batch optimizes every *.pdf directly under inputDir in lexicographic
// filename order. Files larger than cfg.MaxFileSizeMB are skipped; per-file
// failures are contained and the loop continues. Status lines go to w.
func Batch(opt Optimizer, inputDir, outputDir string, cfg types.OptimizeConfig, w io.Writer) BatchResult {
	var result BatchResult

	maxMB := cfg.MaxFileSizeMB
	if maxMB <= 0 {
		maxMB = 100
	}

	files, err := fsutil.ListPDFs(inputDir)
	if err != nil {
		result.Message = err.Error()
		fmt.Fprintln(w, result.Message)
		return result
	}
	if len(files) == 0 {
		result.Message = fmt.Sprintf("no PDF files found in %s", inputDir)
		fmt.Fprintln(w, result.Message)
		return result
	}

	for _, f := range files {
		size, err := fsutil.FileSizeMB(f)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", filepath.Base(f), err)
			result.Failed++
			continue
		}
		if size > maxMB {
			fmt.Fprintf(w, "skipped:   %s (%.2fMB exceeds %.0fMB limit)\n", filepath.Base(f), size, maxMB)
			result.Skipped++
			continue
		}

		out := fsutil.DeriveOutput(f, outputDir, outputSuffix)
		res, err := File(opt, f, out, cfg.Preset)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", filepath.Base(f), err)
			result.Failed++
			continue
		}

		result.Processed++
		result.TotalOriginalMB += res.OriginalMB
		result.TotalFinalMB += res.FinalMB
		result.Files = append(result.Files, types.FileRecord{
			InputPath:  f,
			OutputPath: out,
		})
		fmt.Fprintf(w, "optimized: %s (%.2fMB -> %.2fMB, %.1f%%)\n",
			filepath.Base(f), res.OriginalMB, res.FinalMB, res.SavedPercent())
	}

	fmt.Fprintf(w, "\nBatch summary: %s\n", result.Summary())
	if result.Processed > 0 {
		fmt.Fprintf(w, "Total size: %.2fMB -> %.2fMB\n", result.TotalOriginalMB, result.TotalFinalMB)
	}
	return result
}
