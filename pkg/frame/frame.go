package frame

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotNumeric is returned when aggregating a column of Object dtype.
	ErrNotNumeric = errors.New("column is not numeric")
	// ErrLengthMismatch is returned when table columns differ in length.
	ErrLengthMismatch = errors.New("table columns must have equal length")
	// ErrDuplicateColumn is returned when two table columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrUnnamedColumn is returned when a table column has no name.
	ErrUnnamedColumn = errors.New("table columns must be named")
)

// Dtype is the declared element type of a column.
type Dtype int

const (
	Bool Dtype = iota
	Int64
	Float64
	Object
)

func (d Dtype) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	default:
		return "object"
	}
}

// Data is either a *Table or a *Column. Checks treat both as a set of
// one or more columns.
type Data interface {
	Columns() []*Column
	isData()
}

// IsTable reports whether data is table shaped rather than a single column.
func IsTable(data Data) bool {
	_, ok := data.(*Table)
	return ok
}

// Column is an ordered sequence of scalar values with one dtype.
// Numeric dtypes are held as float64, booleans as 0 and 1.
type Column struct {
	name  string
	dtype Dtype
	nums  []float64
	objs  []any
}

func NewBoolColumn(name string, values []bool) *Column {
	nums := make([]float64, len(values))
	for i, v := range values {
		if v {
			nums[i] = 1
		}
	}
	return &Column{name: name, dtype: Bool, nums: nums}
}

func NewIntColumn(name string, values []int64) *Column {
	nums := make([]float64, len(values))
	for i, v := range values {
		nums[i] = float64(v)
	}
	return &Column{name: name, dtype: Int64, nums: nums}
}

func NewFloatColumn(name string, values []float64) *Column {
	nums := make([]float64, len(values))
	copy(nums, values)
	return &Column{name: name, dtype: Float64, nums: nums}
}

// NewObjectColumn holds arbitrary values, such as strings or mixed types.
func NewObjectColumn(name string, values []any) *Column {
	objs := make([]any, len(values))
	copy(objs, values)
	return &Column{name: name, dtype: Object, objs: objs}
}

func (c *Column) Name() string       { return c.name }
func (c *Column) Dtype() Dtype       { return c.dtype }
func (c *Column) Columns() []*Column { return []*Column{c} }
func (c *Column) isData()            {}

// Len returns the number of values.
func (c *Column) Len() int {
	if c.dtype == Object {
		return len(c.objs)
	}
	return len(c.nums)
}

// Min returns the smallest value, or NaN for an empty column.
func (c *Column) Min() (float64, error) {
	return c.reduce(math.Min)
}

// Max returns the largest value, or NaN for an empty column.
func (c *Column) Max() (float64, error) {
	return c.reduce(math.Max)
}

// Sum returns the total of all values. Booleans count as 0 and 1.
func (c *Column) Sum() (float64, error) {
	if c.dtype == Object {
		return 0, errors.Wrapf(ErrNotNumeric, "column %q", c.name)
	}
	var sum float64
	for _, v := range c.nums {
		sum += v
	}
	return sum, nil
}

// Mean returns the arithmetic mean, or NaN for an empty column. For a
// binary column this is the fraction of ones.
func (c *Column) Mean() (float64, error) {
	sum, err := c.Sum()
	if err != nil {
		return 0, err
	}
	if len(c.nums) == 0 {
		return math.NaN(), nil
	}
	return sum / float64(len(c.nums)), nil
}

func (c *Column) reduce(fn func(a, b float64) float64) (float64, error) {
	if c.dtype == Object {
		return 0, errors.Wrapf(ErrNotNumeric, "column %q", c.name)
	}
	if len(c.nums) == 0 {
		return math.NaN(), nil
	}
	acc := c.nums[0]
	for _, v := range c.nums[1:] {
		acc = fn(acc, v)
	}
	return acc, nil
}

// Table is an ordered collection of named, equal-length columns.
type Table struct {
	cols  []*Column
	index map[string]int
}

// NewTable builds a table, rejecting unnamed, duplicate or ragged columns.
func NewTable(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c.name == "" {
			return nil, errors.Wrapf(ErrUnnamedColumn, "column %d", i)
		}
		if _, ok := t.index[c.name]; ok {
			return nil, errors.Wrapf(ErrDuplicateColumn, "column %q", c.name)
		}
		if i > 0 && c.Len() != cols[0].Len() {
			return nil, errors.Wrapf(ErrLengthMismatch, "column %q has %d rows, want %d", c.name, c.Len(), cols[0].Len())
		}
		t.index[c.name] = i
		t.cols = append(t.cols, c)
	}
	return t, nil
}

func (t *Table) Columns() []*Column { return t.cols }
func (t *Table) isData()            {}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Names returns column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Select returns a table holding only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		c, ok := t.Column(name)
		if !ok {
			return nil, errors.Newf("column %q not found", name)
		}
		cols = append(cols, c)
	}
	return NewTable(cols...)
}
