package check

import (
	"github.com/cockroachdb/errors"

	"github.com/vertti/datacheck/pkg/frame"
)

// Checker is implemented by all check types.
// Each check inspects every column of the data and returns one
// Result per column, in column order.
//
// Implementations:
//   - binarycheck.DtypeCheck: verifies columns are bool or int64
//   - binarycheck.AllSameCheck: flags constant columns
//   - binarycheck.MostlySameCheck: flags near-constant columns
//   - binarycheck.OutsideRangeCheck: flags values outside [0, 1]
type Checker interface {
	Title() string
	Run(data frame.Data) ([]Result, error)
}

// RunAll runs each checker against data and concatenates their results.
// It stops at the first checker that returns an error.
func RunAll(data frame.Data, checkers ...Checker) ([]Result, error) {
	var results []Result
	for _, c := range checkers {
		rs, err := c.Run(data)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", c.Title())
		}
		results = append(results, rs...)
	}
	return results, nil
}
