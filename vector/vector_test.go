package vector

import (
	"math"
	"testing"
)

func TestCloneIndependence(t *testing.T) {
	x := New(1, 2, 3)
	y := x.Clone()
	y[0] = 99

	if x[0] != 1 {
		t.Errorf("mutating clone changed original: got %f, want 1", x[0])
	}
}

func TestNASentinel(t *testing.T) {
	if !IsNA(NA()) {
		t.Error("IsNA(NA()) should be true")
	}
	if IsNA(0) {
		t.Error("IsNA(0) should be false")
	}

	x := New(1, NA(), 3)
	if !x.HasNA() {
		t.Error("HasNA should detect the missing entry")
	}
	if New(1, 2, 3).HasNA() {
		t.Error("HasNA should be false for complete data")
	}
}

func TestBasicStats(t *testing.T) {
	x := New(2, 4, 4, 4, 5, 5, 7, 9)

	if math.Abs(x.Mean()-5.0) > 1e-10 {
		t.Errorf("Mean = %f, want 5", x.Mean())
	}
	if x.Min() != 2 {
		t.Errorf("Min = %f, want 2", x.Min())
	}
	if x.Max() != 9 {
		t.Errorf("Max = %f, want 9", x.Max())
	}
	if math.Abs(x.Median()-4.5) > 1e-10 {
		t.Errorf("Median = %f, want 4.5", x.Median())
	}

	// Sample variance of this set is 32/7.
	if math.Abs(x.Variance()-32.0/7.0) > 1e-10 {
		t.Errorf("Variance = %f, want %f", x.Variance(), 32.0/7.0)
	}
	if math.Abs(x.Std()-math.Sqrt(32.0/7.0)) > 1e-10 {
		t.Errorf("Std = %f, want %f", x.Std(), math.Sqrt(32.0/7.0))
	}
}

func TestStatsEmptyAndOdd(t *testing.T) {
	var empty Vector
	if !math.IsNaN(empty.Min()) || !math.IsNaN(empty.Max()) || !math.IsNaN(empty.Median()) {
		t.Error("Min/Max/Median of empty vector should be NaN")
	}
	if empty.Mean() != 0 {
		t.Errorf("Mean of empty vector = %f, want 0", empty.Mean())
	}

	odd := New(3, 1, 2)
	if odd.Median() != 2 {
		t.Errorf("Median of odd-length vector = %f, want 2", odd.Median())
	}
}

func TestFromSliceCopies(t *testing.T) {
	s := []float64{1, 2, 3}
	v := FromSlice(s)
	s[0] = 99

	if v[0] != 1 {
		t.Errorf("FromSlice aliased the input slice: got %f, want 1", v[0])
	}
}
