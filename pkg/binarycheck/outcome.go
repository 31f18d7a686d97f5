package binarycheck

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/vertti/datacheck/pkg/check"
)

const (
	TitleDtype        = "dtype"
	TitleAllSame      = "all_same"
	TitleMostlySame   = "mostly_same"
	TitleOutsideRange = "outside_range"
)

// AllSame is the outcome of CheckAllSame for one column.
type AllSame struct {
	Column  string
	AllSame bool
	Min     float64
	Max     float64
}

func (o AllSame) Name() string  { return o.Column }
func (o AllSame) Flagged() bool { return o.AllSame }

func (o AllSame) Result() check.Result {
	r := newResult(TitleAllSame, o.Column, o.AllSame)
	r.AddDetailf("min: %g", o.Min).AddDetailf("max: %g", o.Max)
	if o.AllSame {
		r.Err = errors.Newf("column %q is constant", o.Column)
	}
	return r
}

// MostlySame is the outcome of CheckMostlySame for one column. Mean and
// Thresh are kept so callers can see how close the column is to the boundary.
type MostlySame struct {
	Column     string
	MostlySame bool
	Thresh     float64
	Mean       float64
}

func (o MostlySame) Name() string  { return o.Column }
func (o MostlySame) Flagged() bool { return o.MostlySame }

func (o MostlySame) Result() check.Result {
	r := newResult(TitleMostlySame, o.Column, o.MostlySame)
	r.AddDetailf("mean: %.4g", o.Mean).AddDetailf("thresh: %g", o.Thresh)
	if o.MostlySame {
		r.Err = errors.Newf("column %q has mean %.4g beyond thresh %g", o.Column, o.Mean, o.Thresh)
	}
	return r
}

// OutsideRange is the outcome of CheckOutsideRange for one column.
type OutsideRange struct {
	Column       string
	OutsideRange bool
	Min          float64
	Max          float64
}

func (o OutsideRange) Name() string  { return o.Column }
func (o OutsideRange) Flagged() bool { return o.OutsideRange }

func (o OutsideRange) Result() check.Result {
	r := newResult(TitleOutsideRange, o.Column, o.OutsideRange)
	r.AddDetailf("min: %g", o.Min).AddDetailf("max: %g", o.Max)
	if o.OutsideRange {
		r.Err = errors.Newf("column %q has values outside [0, 1]", o.Column)
	}
	return r
}

func newResult(title, column string, flagged bool) check.Result {
	r := check.Result{Name: title, Status: check.StatusOK}
	if column != "" {
		r.Name = fmt.Sprintf("%s: %s", title, column)
	}
	if flagged {
		r.Status = check.StatusFail
	}
	return r
}
