package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfsmith/internal/container"
	"github.com/pdiddy/pdfsmith/internal/convert"
	"github.com/pdiddy/pdfsmith/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Convert PDF files to text or Word documents",
	Long: `Convert transforms PDF files with an external backend: pdftotext produces
.txt files, pdf2docx (container-based) produces .docx files. Pass files as
arguments, or --batch with --input to convert a whole folder. Outputs that
already exist are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir == "" {
			return fmt.Errorf("--output is required")
		}

		conv, err := newConverter(viper.GetString("convert.backend"))
		if err != nil {
			return err
		}

		batch, _ := cmd.Flags().GetBool("batch")
		if batch {
			inputDir, _ := cmd.Flags().GetString("input")
			if inputDir == "" {
				return fmt.Errorf("--input is required with --batch")
			}
			result, err := convert.Dir(conv, inputDir, outputDir, os.Stdout)
			if err != nil {
				return err
			}
			if result.HasFailures() {
				fmt.Fprintf(os.Stderr, "Error: %d of %d files failed\n", result.Failed, result.Total())
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("pass PDF files as arguments, or use --batch with --input")
		}
		result := convert.Batch(conv, args, outputDir, os.Stdout)
		if result.HasFailures() {
			fmt.Fprintf(os.Stderr, "Error: %d of %d files failed\n", result.Failed, result.Total())
		}
		return nil
	},
}

// newConverter builds the conversion backend. The pdf2docx backend needs a
// container runtime (docker or podman) with the image present locally.
func newConverter(backend string) (convert.Converter, error) {
	switch types.ConversionBackend(backend) {
	case types.BackendPdftotext, "":
		return convert.NewPdftotextConverter(), nil
	case types.BackendPdf2docx:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return convert.NewPdf2docxConverter(rt)
	}
	return nil, fmt.Errorf("backend must be pdftotext or pdf2docx (got %q)", backend)
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "folder of PDFs to convert (with --batch)")
	convertCmd.Flags().StringP("output", "o", "", "output folder")
	convertCmd.Flags().String("backend", "pdftotext", "conversion backend: pdftotext or pdf2docx")
	convertCmd.Flags().Bool("batch", false, "convert all PDFs under --input")

	_ = viper.BindPFlag("convert.backend", convertCmd.Flags().Lookup("backend"))

	rootCmd.AddCommand(convertCmd)
}
