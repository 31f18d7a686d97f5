package check

import (
	"github.com/cockroachdb/errors"
)

// Outcome is the result of one check on one column.
type Outcome interface {
	// Name is the column name, empty for an unnamed single column.
	Name() string
	// Flagged reports whether the column tripped the check.
	Flagged() bool
	// Result renders the outcome for printing.
	Result() Result
}

// ErrNotScalar is returned by Report.Value for table input.
var ErrNotScalar = errors.New("report holds a table result, not a scalar")

// Report is the uniform shape returned by every check. It mirrors its
// input: a table yields one outcome per column, a single column yields
// exactly one outcome that Value returns.
type Report[O Outcome] struct {
	Title    string
	Outcomes []O
	Table    bool
}

// NewReport shapes per-column outcomes into a report titled with the
// name of the outcome field.
func NewReport[O Outcome](title string, table bool, outcomes []O) Report[O] {
	return Report[O]{Title: title, Outcomes: outcomes, Table: table}
}

// Value returns the scalar outcome for single-column input.
func (r Report[O]) Value() (O, error) {
	var zero O
	if r.Table || len(r.Outcomes) != 1 {
		return zero, errors.Wrapf(ErrNotScalar, "%s", r.Title)
	}
	return r.Outcomes[0], nil
}

// Lookup returns the outcome for the named column.
func (r Report[O]) Lookup(name string) (O, bool) {
	for _, o := range r.Outcomes {
		if o.Name() == name {
			return o, true
		}
	}
	var zero O
	return zero, false
}

// Map returns column name to flagged.
func (r Report[O]) Map() map[string]bool {
	m := make(map[string]bool, len(r.Outcomes))
	for _, o := range r.Outcomes {
		m[o.Name()] = o.Flagged()
	}
	return m
}

// Flagged returns the names of flagged columns in column order.
func (r Report[O]) Flagged() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Flagged() {
			names = append(names, o.Name())
		}
	}
	return names
}

// Results renders every outcome for printing.
func (r Report[O]) Results() []Result {
	results := make([]Result, len(r.Outcomes))
	for i, o := range r.Outcomes {
		results[i] = o.Result()
	}
	return results
}
