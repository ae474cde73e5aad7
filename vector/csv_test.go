package vector

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	data := `ds,y
2020-01-01,100.5
2020-01-02,101.0
2020-01-03,NA
2020-01-04,102.5
`
	v, err := LoadCSVFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}

	if len(v) != 4 {
		t.Fatalf("expected 4 values (NA rows kept), got %d", len(v))
	}
	if v[0] != 100.5 || v[1] != 101.0 || v[3] != 102.5 {
		t.Errorf("unexpected values: %v", v)
	}
	if !IsNA(v[2]) {
		t.Errorf("NA cell should load as missing, got %f", v[2])
	}
}

func TestLoadCSVNamedColumn(t *testing.T) {
	data := `date,price,volume
2020-01-01,10,1000
2020-01-02,20,2000
`
	opts := DefaultCSVOptions()
	opts.ValueColumn = "price"

	v, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if len(v) != 2 || v[0] != 10 || v[1] != 20 {
		t.Errorf("expected [10 20], got %v", v)
	}
}

func TestLoadCSVFallsBackToLastColumn(t *testing.T) {
	data := `a,b
1,4
2,5
`
	opts := DefaultCSVOptions()
	opts.ValueColumn = "missing"

	v, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if len(v) != 2 || v[0] != 4 || v[1] != 5 {
		t.Errorf("expected last column [4 5], got %v", v)
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	data := "1.5\n2.5\nNaN\n"
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	v, err := LoadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if len(v) != 3 || v[0] != 1.5 || v[1] != 2.5 || !IsNA(v[2]) {
		t.Errorf("unexpected values: %v", v)
	}
}

func TestLoadCSVNoData(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader("y\n"), nil)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("want ErrNoData, got %v", err)
	}
}

func TestCSVRoundTripPreservesNA(t *testing.T) {
	x := New(1.5, NA(), 3.25)
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := SaveCSV(x, path, true); err != nil {
		t.Fatalf("SaveCSV failed: %v", err)
	}

	got, err := LoadCSV(path, nil)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if len(got) != len(x) {
		t.Fatalf("round trip changed length: %d -> %d", len(x), len(got))
	}
	for i := range x {
		switch {
		case IsNA(x[i]) != IsNA(got[i]):
			t.Errorf("missingness changed at %d", i)
		case !IsNA(x[i]) && x[i] != got[i]:
			t.Errorf("value changed at %d: %f -> %f", i, x[i], got[i])
		}
	}
}
