package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/binarycheck"
)

var allSameCmd = &cobra.Command{
	Use:   "all-same <file>",
	Short: "Fail columns whose values are all the same",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllSameCheck,
}

func init() {
	rootCmd.AddCommand(allSameCmd)
}

func runAllSameCheck(cmd *cobra.Command, args []string) error {
	return runChecks(cmd, args[0], binarycheck.AllSameCheck{})
}
