package main

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/dereckmezquita/simts/vector"
)

func TestAnalyzeResultsMarshal(t *testing.T) {
	// MA output carries NaN warm-up entries; the export path must still
	// produce valid JSON (encoding/json rejects NaN).
	scenarios := []Scenario{
		{Name: "MA(1)", Description: "theta=0.7 around mu=10", N: 50, Seed: 4, Theta: []float64{0.7}, Mu: 10, NoiseSD: 1},
		{Name: "AR(1)", Description: "phi=0.8", N: 50, Seed: 2, Phi: []float64{0.8}, NoiseSD: 1},
	}

	output := OutputData{}
	for _, sc := range scenarios {
		result := analyze(sc)
		if result == nil {
			t.Fatalf("analyze(%s) returned nil", sc.Name)
		}
		output.Series = append(output.Series, *result)
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		t.Fatalf("results should marshal to JSON: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("marshaled output is empty")
	}
}

func TestJSONValuesMapsMissingToNull(t *testing.T) {
	v := vector.New(1.5, vector.NA(), 3)

	out := jsonValues(v)
	if len(out) != 3 {
		t.Fatalf("length = %d, want 3", len(out))
	}
	if out[0] == nil || *out[0] != 1.5 {
		t.Errorf("position 0 should hold 1.5")
	}
	if out[1] != nil {
		t.Errorf("missing entry should map to nil, got %f", *out[1])
	}
	if out[2] == nil || *out[2] != 3 {
		t.Errorf("position 2 should hold 3")
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("jsonValues output should marshal: %v", err)
	}
	if string(data) != "[1.5,null,3]" {
		t.Errorf("marshaled = %s, want [1.5,null,3]", data)
	}
}

func TestJSONValuesDoesNotAliasInput(t *testing.T) {
	v := vector.New(7)
	out := jsonValues(v)
	*out[0] = 99

	if v[0] != 7 {
		t.Errorf("mutating export changed input: got %f, want 7", v[0])
	}
}

func TestAnalyzeRangeIgnoresWarmup(t *testing.T) {
	// The defined portion of an MA series has a finite range even though
	// the raw series starts with NaN warm-up entries.
	x, err := generate(Scenario{N: 50, Seed: 4, Theta: []float64{0.7}, Mu: 10, NoiseSD: 1})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !vector.IsNA(x[0]) {
		t.Fatal("MA series should start with a missing warm-up entry")
	}

	defined := vector.SelectDefined(x)
	if math.IsNaN(defined.Min()) || math.IsNaN(defined.Max()) {
		t.Errorf("defined range should be finite: [%f, %f]", defined.Min(), defined.Max())
	}
}
