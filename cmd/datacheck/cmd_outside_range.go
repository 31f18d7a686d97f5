package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/binarycheck"
)

var outsideRangeCmd = &cobra.Command{
	Use:   "outside-range <file>",
	Short: "Fail columns with values below 0 or above 1",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutsideRangeCheck,
}

func init() {
	rootCmd.AddCommand(outsideRangeCmd)
}

func runOutsideRangeCheck(cmd *cobra.Command, args []string) error {
	return runChecks(cmd, args[0], binarycheck.OutsideRangeCheck{})
}
