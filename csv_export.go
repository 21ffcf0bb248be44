package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// CSVExportOptions configures how recorded samples are exported to CSV.
type CSVExportOptions struct {
	FilePath          string
	IncludeTimestamps bool
	FilterByTime      bool
	StartTime         time.Time
	EndTime           time.Time
	CustomHeader      []string // Custom header row; if nil, the default header is used.
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportCSV writes the given data lines to a CSV file, one parsed sample per
// row. Lines that do not parse as samples are skipped. It returns the number
// of rows written.
func ExportCSV(lines []SerialLine, opts CSVExportOptions) (int, error) {
	f, err := os.Create(opts.FilePath)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := opts.CustomHeader
	if len(header) == 0 {
		header = []string{"Signal 1", "Signal 2"}
		if opts.IncludeTimestamps {
			header = append([]string{"Timestamp"}, header...)
		}
	}
	if err := w.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	rows := 0
	for _, line := range lines {
		if opts.FilterByTime {
			if line.Timestamp.Before(opts.StartTime) || line.Timestamp.After(opts.EndTime) {
				continue
			}
		}

		sample, err := ParseSample(line.Data)
		if err != nil {
			continue
		}

		record := []string{formatFloat(sample.Signal1), formatFloat(sample.Signal2)}
		if opts.IncludeTimestamps {
			record = append([]string{line.Timestamp.Format(timestampLayout)}, record...)
		}

		if err := w.Write(record); err != nil {
			return rows, fmt.Errorf("failed to write record: %w", err)
		}
		rows++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush csv writer: %w", err)
	}
	return rows, nil
}

// ParseCustomHeader returns the trimmed fields of the first row of a CSV
// file. A row with no non-empty field is rejected.
func ParseCustomHeader(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open header file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", filePath, err)
	}

	blank := true
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
		if record[i] != "" {
			blank = false
		}
	}
	if blank {
		return nil, fmt.Errorf("header in %s has no column names", filePath)
	}
	return record, nil
}
