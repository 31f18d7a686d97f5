package testutil

import (
	"strings"
	"testing"

	"github.com/vertti/datacheck/pkg/frame"
)

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// MustTable builds a table or fails the test.
func MustTable(t testing.TB, cols ...*frame.Column) *frame.Table {
	t.Helper()
	tbl, err := frame.NewTable(cols...)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return tbl
}
