package vector

import (
	"reflect"
	"testing"
)

func TestSelectPositive(t *testing.T) {
	tests := []struct {
		name string
		in   Vector
		want Vector
	}{
		{"mixed", New(1.5, -2, 0, 3, -0.1, 0.5), New(1.5, 3, 0.5)},
		{"all negative", New(-1, -2, -3), New()},
		{"all positive", New(1, 2, 3), New(1, 2, 3)},
		{"empty", New(), New()},
		{"zero excluded", New(0, 0, 0), New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPositive(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SelectPositive(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSelectPositiveVariantsAgree(t *testing.T) {
	x := New(3, -1, 0, 7, 2, -5, 0.001, -0.001)

	twoPass := SelectPositive(x)
	naive := SelectPositiveNaive(x)

	if len(twoPass) != len(naive) {
		t.Fatalf("variants disagree on length: %d vs %d", len(twoPass), len(naive))
	}
	for i := range twoPass {
		if twoPass[i] != naive[i] {
			t.Errorf("variants disagree at %d: %f vs %f", i, twoPass[i], naive[i])
		}
	}
}

func TestSelectDefined(t *testing.T) {
	na := NA()
	got := SelectDefined(New(1, na, -2, na, 3))
	want := New(1, -2, 3)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectDefined = %v, want %v", got, want)
	}

	if len(SelectDefined(New(na, na))) != 0 {
		t.Error("SelectDefined of all-missing input should be empty")
	}
}

func TestSelectPositiveDoesNotAlias(t *testing.T) {
	x := New(1, 2, 3)
	got := SelectPositive(x)
	got[0] = 99

	if x[0] != 1 {
		t.Errorf("mutating result changed input: got %f, want 1", x[0])
	}
}

func benchInput(n int) Vector {
	x := make(Vector, n)
	for i := range x {
		x[i] = float64(i%7) - 3
	}
	return x
}

func BenchmarkSelectPositive(b *testing.B) {
	x := benchInput(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SelectPositive(x)
	}
}

func BenchmarkSelectPositiveNaive(b *testing.B) {
	x := benchInput(100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SelectPositiveNaive(x)
	}
}
