package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/checkfile"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run the checks listed in a .datacheck.yaml file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to check file (default: search up from current directory)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	suitePath, err := checkfile.FindFile(wd, runFile)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", suitePath).Msg("using check file")

	suite, err := checkfile.Load(suitePath)
	if err != nil {
		return err
	}
	if err := suite.CheckVersion(Version); err != nil {
		return err
	}

	data, err := readInput(cmd, logger, args[0])
	if err != nil {
		return err
	}
	results, err := suite.Run(data)
	if err != nil {
		return err
	}
	return report(cmd, results)
}
