package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/binarycheck"
)

var dtypeCmd = &cobra.Command{
	Use:   "dtype <file>",
	Short: "Check that columns are bool or int typed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDtypeCheck,
}

func init() {
	rootCmd.AddCommand(dtypeCmd)
}

func runDtypeCheck(cmd *cobra.Command, args []string) error {
	return runChecks(cmd, args[0], binarycheck.DtypeCheck{})
}
