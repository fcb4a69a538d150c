package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfsmith/internal/optimize"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Recompress a single PDF to shrink its size",
	Long: `Optimize rasterizes and recompresses a PDF through Ghostscript. Presets:
standard (printer quality), aggressive (screen quality, smallest files),
and high-quality (prepress).`,
	PreRunE: bindOptimizeFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		if input == "" || output == "" {
			return fmt.Errorf("--input and --output are required")
		}

		preset, err := optimize.NormalizePreset(viper.GetString("optimize.preset"))
		if err != nil {
			return err
		}

		gs := optimize.NewGhostscript(viper.GetString("optimize.ghostscript_path"))
		res, err := optimize.File(gs, input, output, preset)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
		fmt.Printf("optimized: %.2fMB -> %.2fMB (%.1f%% reduction) -> %s\n",
			res.OriginalMB, res.FinalMB, res.SavedPercent(), output)
		return nil
	},
}

var batchOptimizeCmd = &cobra.Command{
	Use:   "batch-optimize",
	Short: "Recompress every PDF in a folder",
	Long: `Batch-optimize recompresses every *.pdf directly under the input folder,
writing {name}_optimized.pdf files to the output folder. Files larger than
--max-file-size are skipped. One file's failure never aborts the batch.`,
	PreRunE: bindOptimizeFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir, _ := cmd.Flags().GetString("input")
		outputDir, _ := cmd.Flags().GetString("output")
		if inputDir == "" || outputDir == "" {
			return fmt.Errorf("--input and --output are required")
		}

		preset, err := optimize.NormalizePreset(viper.GetString("optimize.preset"))
		if err != nil {
			return err
		}
		cfg := types.OptimizeConfig{
			Preset:          preset,
			MaxFileSizeMB:   viper.GetFloat64("optimize.max_file_size_mb"),
			GhostscriptPath: viper.GetString("optimize.ghostscript_path"),
		}

		gs := optimize.NewGhostscript(cfg.GhostscriptPath)
		result := optimize.Batch(gs, inputDir, outputDir, cfg, os.Stdout)
		if result.HasFailures() {
			fmt.Fprintf(os.Stderr, "Error: %d of %d files failed\n", result.Failed, result.Total())
		}
		return nil
	},
}

func bindOptimizeFlags(cmd *cobra.Command, _ []string) error {
	for key, flag := range map[string]string{
		"optimize.preset":           "preset",
		"optimize.ghostscript_path": "ghostscript-path",
	} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("max-file-size"); f != nil {
		return viper.BindPFlag("optimize.max_file_size_mb", f)
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{optimizeCmd, batchOptimizeCmd} {
		cmd.Flags().StringP("input", "i", "", "input PDF file (folder for batch-optimize)")
		cmd.Flags().StringP("output", "o", "", "output PDF file (folder for batch-optimize)")
		cmd.Flags().String("preset", "standard", "optimization preset: standard, aggressive, or high-quality")
		cmd.Flags().String("ghostscript-path", "gs", "Ghostscript binary")
	}
	batchOptimizeCmd.Flags().Float64("max-file-size", 100, "skip files larger than this size in MB")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(batchOptimizeCmd)
}
