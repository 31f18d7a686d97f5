package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	columnName string
	showDigest bool
)

var rootCmd = &cobra.Command{
	Use:          "datacheck",
	Short:        "Data-quality checks for binary feature columns",
	Long:         "Datacheck validates that binary feature columns are bool or int typed and reports constant, near-constant and out-of-range columns.",
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&columnName, "column", "", "check a single column of the table instead of the whole table")
	rootCmd.PersistentFlags().BoolVar(&showDigest, "digest", false, "print a BLAKE3 digest of the results")
	registerLoggerFlags(rootCmd)
}
