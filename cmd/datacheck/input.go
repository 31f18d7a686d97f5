package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vertti/datacheck/pkg/frame"
)

// readInput loads a JSON table from path, or stdin when path is "-".
// With --column set it returns that single column instead of the table.
func readInput(cmd *cobra.Command, logger zerolog.Logger, path string) (frame.Data, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path) //nolint:gosec // intentional: data file from user
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	tbl, err := frame.FromJSON(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	logger.Debug().
		Str("path", path).
		Int("columns", len(tbl.Columns())).
		Int("rows", tbl.Len()).
		Msg("loaded table")

	if columnName == "" {
		return tbl, nil
	}
	col, ok := tbl.Column(columnName)
	if !ok {
		return nil, errors.Newf("column %q not found in %s", columnName, path)
	}
	return col, nil
}
