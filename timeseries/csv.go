package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
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

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
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

	valueIdx := -1
	name := ""

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")) {
				valueIdx = i
				name = h
			}
		}

		// Default to last column when the named column is absent
		if valueIdx == -1 {
			valueIdx = len(header) - 1
			name = strings.TrimSpace(strings.Trim(header[valueIdx], "\""))
		}
	} else {
		// No header: single column, or value in second column after an index
		valueIdx = -2
	}

	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		idx := valueIdx
		if idx == -2 {
			idx = len(record) - 1
		}
		if idx < 0 || idx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[idx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // Skip non-numeric rows
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return &Series{Values: values, Name: name}, nil
}

// SaveCSV saves a time series to a CSV file with an integer index column.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	name := series.Name
	if name == "" {
		name = "y"
	}
	writer.WriteString("index," + name + "\n")

	for i, v := range series.Values {
		writer.WriteString(strconv.Itoa(i + 1))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
