package vector

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string   // Column name for values (default: "y")
	HasHeader   bool     // Whether CSV has a header row (default: true)
	Delimiter   rune     // Field delimiter (default: ',')
	SkipRows    int      // Number of rows to skip at start
	NAStrings   []string // Cell contents treated as missing (default: "", "NA", "NaN", "null")
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
		NAStrings:   []string{"", "NA", "NaN", "null"},
	}
}

// LoadCSV loads a vector from a CSV file. Cells matching one of the
// configured NA strings become the missing sentinel rather than being
// dropped, so row positions survive the load.
func LoadCSV(filename string, opts *CSVOptions) (Vector, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a vector from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (Vector, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := 0
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")) {
				valueIdx = i
				break
			}
		}
		if valueIdx == -1 {
			// Default to the last column when the named one is absent.
			valueIdx = len(header) - 1
		}
	}

	var values Vector
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx >= len(record) {
			continue
		}

		cell := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if isNAString(cell, opts.NAStrings) {
			values = append(values, math.NaN())
			continue
		}
		val, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue // Skip unparseable cells
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return values, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a vector.
func LoadCSVColumn(filename, column string) (Vector, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a vector to a CSV file with a single "y" column. Missing
// entries are written as "NA". When includeIndex is true a 1-based "index"
// column is written first.
func SaveCSV(v Vector, filename string, includeIndex bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	if includeIndex {
		writer.WriteString("index,y\n")
	} else {
		writer.WriteString("y\n")
	}

	for i, x := range v {
		if includeIndex {
			writer.WriteString(strconv.Itoa(i + 1))
			writer.WriteString(",")
		}
		if IsNA(x) {
			writer.WriteString("NA")
		} else {
			writer.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
		}
		writer.WriteString("\n")
	}

	return nil
}

func isNAString(cell string, naStrings []string) bool {
	for _, na := range naStrings {
		if cell == na {
			return true
		}
	}
	return false
}
