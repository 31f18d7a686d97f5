package binarycheck

import (
	"github.com/cockroachdb/errors"

	"github.com/vertti/datacheck/pkg/frame"
)

// ErrInvalidDtype is returned when a column is neither bool nor int64.
// Column details are attached with errors.WithDetail so the message stays fixed.
var ErrInvalidDtype = errors.New("Binary feature columns should be of type bool or int64.") //nolint:stylecheck // fixed public message

// IsBinaryDtype reports whether d can hold binary feature values.
func IsBinaryDtype(d frame.Dtype) bool {
	return d == frame.Bool || d == frame.Int64
}

// ValidateDtype returns ErrInvalidDtype if any column of data is not
// bool or int64 typed.
func ValidateDtype(data frame.Data) error {
	for _, c := range data.Columns() {
		if !IsBinaryDtype(c.Dtype()) {
			return errors.WithDetailf(ErrInvalidDtype, "column %q has dtype %s", c.Name(), c.Dtype())
		}
	}
	return nil
}
