// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfsmith CLI, a batch PDF toolkit:
// page numbering, signature-preserving merging, optimization, and conversion.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfsmith CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfsmith",
	Short: "Batch PDF toolkit: numbering, merging, optimization, conversion",
	Long: `pdfsmith manipulates PDF files in batches. Each operation is a subcommand:
paginate and batch-paginate stamp page numbers (optionally continuing the
counter across files), merge and merge-folder concatenate documents, optimize
and batch-optimize recompress them, convert extracts text or Word documents,
and analyze reports document properties.

Operations that rewrite PDFs choose between two save policies: a preserving
write that keeps existing digital signatures intact (the default), and a
standard write that garbage-collects and compresses for smaller files.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfsmith.yaml or ~/.config/pdfsmith/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfsmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfsmith"))
		}
	}

	viper.SetEnvPrefix("PDFSMITH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
