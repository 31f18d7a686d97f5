package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/binarycheck"
	"github.com/vertti/datacheck/pkg/check"
)

var mostlySameThresh float64

var mostlySameCmd = &cobra.Command{
	Use:   "mostly-same <file>",
	Short: "Fail columns where one value makes up at least --thresh of the rows",
	Args:  cobra.ExactArgs(1),
	RunE:  runMostlySameCheck,
}

func init() {
	mostlySameCmd.Flags().Float64Var(&mostlySameThresh, "thresh", binarycheck.DefaultThresh, "proportion of identical values, between 0 and 1 exclusive")
	rootCmd.AddCommand(mostlySameCmd)
}

func runMostlySameCheck(cmd *cobra.Command, args []string) error {
	if err := check.ValidateThresh(mostlySameThresh); err != nil {
		return err
	}
	return runChecks(cmd, args[0], binarycheck.MostlySameCheck{Thresh: mostlySameThresh})
}
