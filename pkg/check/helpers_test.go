package check

import (
	"errors"
	"math"
	"testing"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "dtype: price"}
	err := errors.New("float64 column")

	result := r.Fail("dtype: float64", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "dtype: float64" {
		t.Errorf("Details = %v, want [dtype: float64]", result.Details)
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetailf("mean: %.2f", 0.96)

	if len(result.Details) != 1 || result.Details[0] != "mean: 0.96" {
		t.Errorf("Details = %v, want [mean: 0.96]", result.Details)
	}
}

func TestValidateThresh(t *testing.T) {
	tests := []struct {
		thresh  float64
		wantErr bool
	}{
		{0.5, false},
		{0.95, false},
		{0.0001, false},
		{0.9999, false},
		{0.0, true},
		{1.0, true},
		{1.01, true},
		{-0.5, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		err := ValidateThresh(tt.thresh)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateThresh(%v) error = %v, wantErr %v", tt.thresh, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("ValidateThresh(%v) error = %v, want ErrInvalidThreshold", tt.thresh, err)
		}
	}
}
