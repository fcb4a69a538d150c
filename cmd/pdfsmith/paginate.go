package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfsmith/internal/engine"
	"github.com/pdiddy/pdfsmith/internal/paginate"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

var paginateCmd = &cobra.Command{
	Use:   "paginate",
	Short: "Add page numbers to a single PDF",
	Long: `Paginate stamps a page number on every page of one PDF. The label anchor,
start page, font size, and margin are configurable; unknown anchors fall
back to bottom-right. By default the file is saved without recompression so
existing digital signatures stay intact.`,
	PreRunE: bindPaginateFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		if input == "" || output == "" {
			return fmt.Errorf("--input and --output are required")
		}

		pages, err := paginate.File(engine.NewPDFCPU(), input, output, paginateOptions())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}
		fmt.Printf("numbered %d pages -> %s\n", pages, output)
		return nil
	},
}

var batchPaginateCmd = &cobra.Command{
	Use:   "batch-paginate",
	Short: "Add page numbers to every PDF in a folder",
	Long: `Batch-paginate numbers every *.pdf directly under the input folder, in
lexicographic filename order, writing {name}_numbered.pdf files to the
output folder. With --continuous the page counter keeps running across
files instead of restarting; a file that fails does not advance the
counter. One file's failure never aborts the batch.`,
	PreRunE: bindPaginateFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputDir, _ := cmd.Flags().GetString("input")
		outputDir, _ := cmd.Flags().GetString("output")
		if inputDir == "" || outputDir == "" {
			return fmt.Errorf("--input and --output are required")
		}

		opts := paginateOptions()
		opts.Continuous = viper.GetBool("paginate.continuous")

		stats := paginate.Batch(engine.NewPDFCPU(), inputDir, outputDir, opts, os.Stdout)
		if stats.HasFailures() {
			fmt.Fprintf(os.Stderr, "Error: %d of %d files failed\n", stats.Failed, stats.Total())
		}
		return nil
	},
}

// bindPaginateFlags binds the executing command's flags to the shared viper
// keys. Binding at PreRun time (rather than init) matters because both
// pagination commands declare the same flag names.
func bindPaginateFlags(cmd *cobra.Command, _ []string) error {
	for key, flag := range map[string]string{
		"paginate.position":            "position",
		"paginate.start_page":          "start-page",
		"paginate.font_size":           "font-size",
		"paginate.margin":              "margin",
		"paginate.preserve_signatures": "preserve-signatures",
	} {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	if f := cmd.Flags().Lookup("continuous"); f != nil {
		return viper.BindPFlag("paginate.continuous", f)
	}
	return nil
}

// paginateOptions reads the shared pagination settings from viper, which
// merges flag values, config file entries, and environment variables.
func paginateOptions() paginate.Options {
	return paginate.Options{
		Anchor:    types.ParseAnchor(viper.GetString("paginate.position")),
		StartPage: viper.GetInt("paginate.start_page"),
		FontSize:  viper.GetFloat64("paginate.font_size"),
		Margin:    viper.GetFloat64("paginate.margin"),
		Profile:   types.ProfileFor(viper.GetBool("paginate.preserve_signatures")),
	}
}

func init() {
	for _, cmd := range []*cobra.Command{paginateCmd, batchPaginateCmd} {
		cmd.Flags().StringP("input", "i", "", "input PDF file (folder for batch-paginate)")
		cmd.Flags().StringP("output", "o", "", "output PDF file (folder for batch-paginate)")
		cmd.Flags().String("position", "bottom-right", "label anchor: bottom-right, bottom-center, bottom-left, top-right, top-center, top-left")
		cmd.Flags().Int("start-page", 1, "first page label")
		cmd.Flags().Float64("font-size", 12, "label font size in points")
		cmd.Flags().Float64("margin", 50, "distance from page edges in points")
		cmd.Flags().Bool("preserve-signatures", true, "save without recompression to keep digital signatures valid")
	}

	batchPaginateCmd.Flags().Bool("continuous", false, "continue page numbering across files")

	rootCmd.AddCommand(paginateCmd)
	rootCmd.AddCommand(batchPaginateCmd)
}
