package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/check"
	"github.com/vertti/datacheck/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runChecks loads the data file, runs the checks, prints the results and
// returns an error if any failed. The returned error causes Cobra to exit
// with code 1.
func runChecks(cmd *cobra.Command, path string, checkers ...check.Checker) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, logger, path)
	if err != nil {
		return err
	}
	logger.Debug().Int("checks", len(checkers)).Msg("running checks")
	results, err := check.RunAll(data, checkers...)
	if err != nil {
		return err
	}
	return report(cmd, results)
}

func report(cmd *cobra.Command, results []check.Result) error {
	out := cmd.OutOrStdout()
	output.PrintResults(out, results)
	if showDigest {
		output.PrintDigest(out, check.Digest(results))
	}
	if !check.AllOK(results) {
		return ErrCheckFailed
	}
	return nil
}
