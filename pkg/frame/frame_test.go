package frame

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDtypeString(t *testing.T) {
	tests := []struct {
		dtype Dtype
		want  string
	}{
		{Bool, "bool"},
		{Int64, "int64"},
		{Float64, "float64"},
		{Object, "object"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dtype.String())
	}
}

func TestColumnAggregates(t *testing.T) {
	tests := []struct {
		name     string
		col      *Column
		wantMin  float64
		wantMax  float64
		wantMean float64
	}{
		{"bool", NewBoolColumn("b", []bool{true, false, true, true}), 0, 1, 0.75},
		{"int", NewIntColumn("i", []int64{0, 1, 2}), 0, 2, 1},
		{"negative int", NewIntColumn("i", []int64{-1, 0}), -1, 0, -0.5},
		{"float", NewFloatColumn("f", []float64{0.5, 0.25}), 0.25, 0.5, 0.375},
		{"constant", NewIntColumn("c", []int64{1, 1, 1}), 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, err := tt.col.Min()
			require.NoError(t, err)
			hi, err := tt.col.Max()
			require.NoError(t, err)
			mean, err := tt.col.Mean()
			require.NoError(t, err)

			assert.Equal(t, tt.wantMin, lo)
			assert.Equal(t, tt.wantMax, hi)
			assert.InDelta(t, tt.wantMean, mean, 1e-12)
		})
	}
}

func TestColumnAggregatesEmpty(t *testing.T) {
	c := NewIntColumn("empty", nil)

	lo, err := c.Min()
	require.NoError(t, err)
	hi, err := c.Max()
	require.NoError(t, err)
	mean, err := c.Mean()
	require.NoError(t, err)

	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
	assert.True(t, math.IsNaN(mean))
}

func TestColumnAggregatesObject(t *testing.T) {
	c := NewObjectColumn("s", []any{"a", "b"})

	_, err := c.Min()
	assert.True(t, errors.Is(err, ErrNotNumeric))
	_, err = c.Max()
	assert.True(t, errors.Is(err, ErrNotNumeric))
	_, err = c.Mean()
	assert.True(t, errors.Is(err, ErrNotNumeric))
	assert.Equal(t, 2, c.Len())
}

func TestConstructorsCopyInput(t *testing.T) {
	values := []float64{0, 1}
	c := NewFloatColumn("f", values)
	values[0] = 5

	hi, err := c.Max()
	require.NoError(t, err)
	assert.Equal(t, 1.0, hi)
}

func TestNewTable(t *testing.T) {
	a := NewIntColumn("A", []int64{1, 1, 1})
	b := NewIntColumn("B", []int64{1, 0, 1})

	tbl, err := NewTable(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, tbl.Names())
	assert.Equal(t, 3, tbl.Len())
	assert.Len(t, tbl.Columns(), 2)

	got, ok := tbl.Column("B")
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = tbl.Column("C")
	assert.False(t, ok)
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		cols    []*Column
		wantErr error
	}{
		{
			name:    "unnamed column",
			cols:    []*Column{NewIntColumn("", []int64{1})},
			wantErr: ErrUnnamedColumn,
		},
		{
			name:    "duplicate column",
			cols:    []*Column{NewIntColumn("a", []int64{1}), NewBoolColumn("a", []bool{true})},
			wantErr: ErrDuplicateColumn,
		},
		{
			name:    "ragged columns",
			cols:    []*Column{NewIntColumn("a", []int64{1}), NewIntColumn("b", []int64{1, 0})},
			wantErr: ErrLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.cols...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestEmptyTable(t *testing.T) {
	tbl, err := NewTable()
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Names())
}

func TestSelect(t *testing.T) {
	tbl, err := NewTable(
		NewIntColumn("a", []int64{1}),
		NewIntColumn("b", []int64{0}),
		NewIntColumn("c", []int64{1}),
	)
	require.NoError(t, err)

	sub, err := tbl.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Names())

	_, err = tbl.Select("missing")
	assert.ErrorContains(t, err, `column "missing" not found`)
}

func TestIsTable(t *testing.T) {
	col := NewBoolColumn("", []bool{true})
	tbl, err := NewTable(NewBoolColumn("x", []bool{true}))
	require.NoError(t, err)

	assert.False(t, IsTable(col))
	assert.True(t, IsTable(tbl))
	assert.Equal(t, []*Column{col}, col.Columns())
}
