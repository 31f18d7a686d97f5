package check

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidThreshold is returned for thresholds outside (0.0, 1.0).
var ErrInvalidThreshold = errors.New("thresh must be greater than 0.0 and less than 1.0")

// ValidateThresh returns an error unless 0.0 < thresh < 1.0.
func ValidateThresh(thresh float64) error {
	if math.IsNaN(thresh) || thresh <= 0.0 || thresh >= 1.0 {
		return errors.Wrapf(ErrInvalidThreshold, "thresh %v", thresh)
	}
	return nil
}

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
