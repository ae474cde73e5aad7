// Package vector provides the numeric sequence type, reductions, and CSV I/O.
//
// A Vector is an ordered slice of float64 values. Missing entries use the
// IEEE NaN sentinel; IsNA tests for it and NA produces it. Reductions
// propagate missingness rather than treating it as zero, matching the
// convention of statistical environments.
//
// # Creating Vectors
//
// Build a vector from values or an existing slice:
//
//	x := vector.New(100, 102, 105, 103)
//	y := vector.FromSlice(data)   // copies
//	z := x.Clone()                // independent copy
//
// # Reductions
//
// Reduce to summary values:
//
//	total := x.Sum()
//	mean := x.Mean()
//	wm, err := vector.WeightedMean(x, w)  // NA-propagating
//
// WeightedMean returns ErrDimensionMismatch when the weight vector's length
// differs from the data's, and the NA sentinel when either input contains a
// missing entry.
//
// # Filtering
//
// Keep the strictly positive entries in order:
//
//	pos := vector.SelectPositive(x)
//
// SelectPositive counts first and allocates the exact output size;
// SelectPositiveNaive is the append-growth baseline kept for benchmarking.
//
// # Descriptive Statistics
//
// Summarize the non-missing entries:
//
//	summary, err := x.Describe()
//	fmt.Printf("n=%d mean=%.2f sd=%.2f\n", summary.N, summary.Mean, summary.Std)
//
// # CSV
//
// Load and save vectors:
//
//	x, err := vector.LoadCSVColumn("data.csv", "y")
//
//	opts := vector.DefaultCSVOptions()
//	opts.ValueColumn = "price"
//	x, err = vector.LoadCSV("data.csv", opts)
//
// Cells reading "NA", "NaN", "null", or empty become missing entries so
// that row positions are preserved.
package vector
