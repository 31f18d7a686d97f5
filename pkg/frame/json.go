package frame

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// FromJSON builds a table from a JSON object whose members are arrays of
// equal length, e.g. {"a": [1, 0, 1], "b": [true, false, true]}.
// Columns keep document order. Dtypes are inferred per column.
func FromJSON(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, errors.New("table JSON must be an object of arrays")
	}

	var (
		cols []*Column
		err  error
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		var c *Column
		c, err = columnFromResult(key.String(), value)
		if err != nil {
			return false
		}
		cols = append(cols, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return NewTable(cols...)
}

// ColumnFromJSON builds a single column from a JSON array.
func ColumnFromJSON(name string, data []byte) (*Column, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	return columnFromResult(name, gjson.ParseBytes(data))
}

func columnFromResult(name string, value gjson.Result) (*Column, error) {
	if !value.IsArray() {
		return nil, errors.Newf("column %q: expected a JSON array", name)
	}
	values := value.Array()

	switch inferDtype(values) {
	case Bool:
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.Bool()
		}
		return NewBoolColumn(name, out), nil
	case Int64:
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = v.Int()
		}
		return NewIntColumn(name, out), nil
	case Float64:
		out := make([]float64, len(values))
		for i, v := range values {
			if v.Type == gjson.Null {
				out[i] = math.NaN()
				continue
			}
			out[i] = v.Float()
		}
		return NewFloatColumn(name, out), nil
	default:
		out := make([]any, len(values))
		for i, v := range values {
			out[i] = v.Value()
		}
		return NewObjectColumn(name, out), nil
	}
}

// inferDtype follows the usual dataframe rules: nulls turn an integer
// column into floats, and anything that is neither all-bool nor
// all-numeric becomes object.
func inferDtype(values []gjson.Result) Dtype {
	var bools, ints, floats, nulls, others int
	for _, v := range values {
		switch v.Type {
		case gjson.True, gjson.False:
			bools++
		case gjson.Number:
			if strings.ContainsAny(v.Raw, ".eE") {
				floats++
			} else {
				ints++
			}
		case gjson.Null:
			nulls++
		default:
			others++
		}
	}

	numbers := ints + floats
	switch {
	case others > 0:
		return Object
	case bools > 0 && (numbers > 0 || nulls > 0):
		return Object
	case bools > 0:
		return Bool
	case floats > 0 || nulls > 0:
		return Float64
	case ints > 0:
		return Int64
	default:
		// empty array
		return Float64
	}
}
