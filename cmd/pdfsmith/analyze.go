package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfsmith/internal/analyze"
	"github.com/pdiddy/pdfsmith/internal/engine"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.pdf>",
	Short: "Report a PDF's size, page count, and page geometry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := analyze.Inspect(engine.NewPDFCPU(), args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return err
		}

		out, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
