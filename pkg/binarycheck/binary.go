// Package binarycheck validates binary feature columns and reports
// constant, near-constant and out-of-range columns.
package binarycheck

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"

	"github.com/vertti/datacheck/pkg/check"
	"github.com/vertti/datacheck/pkg/frame"
)

// DefaultThresh is the proportion of identical values at which a column
// counts as mostly the same.
const DefaultThresh = 0.95

// decimalCtx is wide enough to multiply any float64 threshold by any row
// count without rounding.
var decimalCtx = apd.BaseContext.WithPrecision(64)

// CheckAllSame flags columns whose values are all equal.
func CheckAllSame(data frame.Data) (check.Report[AllSame], error) {
	if err := ValidateDtype(data); err != nil {
		return check.Report[AllSame]{}, err
	}

	cols := data.Columns()
	outcomes := make([]AllSame, len(cols))
	for i, c := range cols {
		lo, hi, err := minMax(c)
		if err != nil {
			return check.Report[AllSame]{}, err
		}
		outcomes[i] = AllSame{Column: c.Name(), AllSame: lo == hi, Min: lo, Max: hi}
	}
	return check.NewReport(TitleAllSame, frame.IsTable(data), outcomes), nil
}

// CheckMostlySame flags columns where at least thresh of the values are
// the same, i.e. mean >= thresh or mean <= 1-thresh. Both bounds are
// inclusive. thresh must lie in (0, 1).
func CheckMostlySame(data frame.Data, thresh float64) (check.Report[MostlySame], error) {
	if err := check.ValidateThresh(thresh); err != nil {
		return check.Report[MostlySame]{}, err
	}
	if err := ValidateDtype(data); err != nil {
		return check.Report[MostlySame]{}, err
	}

	cols := data.Columns()
	outcomes := make([]MostlySame, len(cols))
	for i, c := range cols {
		sum, err := c.Sum()
		if err != nil {
			return check.Report[MostlySame]{}, err
		}
		mean, err := c.Mean()
		if err != nil {
			return check.Report[MostlySame]{}, err
		}
		flagged, err := mostlySame(sum, c.Len(), thresh)
		if err != nil {
			return check.Report[MostlySame]{}, errors.Wrapf(err, "column %q", c.Name())
		}
		outcomes[i] = MostlySame{Column: c.Name(), MostlySame: flagged, Thresh: thresh, Mean: mean}
	}
	return check.NewReport(TitleMostlySame, frame.IsTable(data), outcomes), nil
}

// CheckOutsideRange flags columns with a value below 0 or above 1. Integer
// columns pass ValidateDtype whatever their values, so this catches
// columns such as [0, 1, 2].
func CheckOutsideRange(data frame.Data) (check.Report[OutsideRange], error) {
	if err := ValidateDtype(data); err != nil {
		return check.Report[OutsideRange]{}, err
	}

	cols := data.Columns()
	outcomes := make([]OutsideRange, len(cols))
	for i, c := range cols {
		lo, hi, err := minMax(c)
		if err != nil {
			return check.Report[OutsideRange]{}, err
		}
		outcomes[i] = OutsideRange{Column: c.Name(), OutsideRange: lo < 0 || hi > 1, Min: lo, Max: hi}
	}
	return check.NewReport(TitleOutsideRange, frame.IsTable(data), outcomes), nil
}

func minMax(c *frame.Column) (float64, float64, error) {
	lo, err := c.Min()
	if err != nil {
		return 0, 0, err
	}
	hi, err := c.Max()
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// mostlySame compares sum/rows against thresh and 1-thresh in decimal,
// taking thresh at its shortest decimal form. 1-0.9 is not 0.1 in
// float64, so a float comparison would miss columns sitting exactly on the
// lower bound.
func mostlySame(sum float64, rows int, thresh float64) (bool, error) {
	if rows == 0 || math.IsNaN(sum) {
		return false, nil
	}

	t, _, err := apd.NewFromString(strconv.FormatFloat(thresh, 'f', -1, 64))
	if err != nil {
		return false, errors.Wrapf(err, "parsing thresh %v", thresh)
	}
	s, err := new(apd.Decimal).SetFloat64(sum)
	if err != nil {
		return false, errors.Wrapf(err, "converting sum %v", sum)
	}
	n := apd.New(int64(rows), 0)

	upper := new(apd.Decimal)
	if _, err := decimalCtx.Mul(upper, t, n); err != nil {
		return false, err
	}
	lower := new(apd.Decimal)
	if _, err := decimalCtx.Sub(lower, n, upper); err != nil {
		return false, err
	}
	return s.Cmp(upper) >= 0 || s.Cmp(lower) <= 0, nil
}
