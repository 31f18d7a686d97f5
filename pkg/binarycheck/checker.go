package binarycheck

import (
	"github.com/cockroachdb/errors"

	"github.com/vertti/datacheck/pkg/check"
	"github.com/vertti/datacheck/pkg/frame"
)

// ErrUnknownCheck is returned by NewChecker for an unrecognised name.
var ErrUnknownCheck = errors.New("unknown check")

// Names lists the checks NewChecker understands.
var Names = []string{TitleDtype, TitleAllSame, TitleMostlySame, TitleOutsideRange}

// NewChecker returns the named check. thresh is only used by mostly_same.
func NewChecker(name string, thresh float64) (check.Checker, error) {
	switch name {
	case TitleDtype:
		return DtypeCheck{}, nil
	case TitleAllSame:
		return AllSameCheck{}, nil
	case TitleMostlySame:
		if err := check.ValidateThresh(thresh); err != nil {
			return nil, err
		}
		return MostlySameCheck{Thresh: thresh}, nil
	case TitleOutsideRange:
		return OutsideRangeCheck{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownCheck, "%q", name)
	}
}

// DtypeCheck reports the dtype of every column and fails the ones that
// are not bool or int64. Unlike the other checks it does not return
// ErrInvalidDtype; bad columns become FAIL results.
type DtypeCheck struct{}

func (DtypeCheck) Title() string { return TitleDtype }

func (DtypeCheck) Run(data frame.Data) ([]check.Result, error) {
	cols := data.Columns()
	results := make([]check.Result, len(cols))
	for i, c := range cols {
		r := newResult(TitleDtype, c.Name(), false)
		if !IsBinaryDtype(c.Dtype()) {
			results[i] = r.Fail("dtype: "+c.Dtype().String(),
				errors.WithDetailf(ErrInvalidDtype, "column %q has dtype %s", c.Name(), c.Dtype()))
			continue
		}
		r.AddDetailf("dtype: %s", c.Dtype())
		results[i] = r
	}
	return results, nil
}

// AllSameCheck runs CheckAllSame.
type AllSameCheck struct{}

func (AllSameCheck) Title() string { return TitleAllSame }

func (AllSameCheck) Run(data frame.Data) ([]check.Result, error) {
	report, err := CheckAllSame(data)
	if err != nil {
		return nil, err
	}
	return report.Results(), nil
}

// MostlySameCheck runs CheckMostlySame with Thresh.
type MostlySameCheck struct {
	Thresh float64
}

func (MostlySameCheck) Title() string { return TitleMostlySame }

func (c MostlySameCheck) Run(data frame.Data) ([]check.Result, error) {
	report, err := CheckMostlySame(data, c.Thresh)
	if err != nil {
		return nil, err
	}
	return report.Results(), nil
}

// OutsideRangeCheck runs CheckOutsideRange.
type OutsideRangeCheck struct{}

func (OutsideRangeCheck) Title() string { return TitleOutsideRange }

func (OutsideRangeCheck) Run(data frame.Data) ([]check.Result, error) {
	report, err := CheckOutsideRange(data)
	if err != nil {
		return nil, err
	}
	return report.Results(), nil
}
