package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func testLines(base time.Time) []SerialLine {
	return []SerialLine{
		{Seq: 1, Timestamp: base, Data: "1.5,2.75"},
		{Seq: 2, Timestamp: base.Add(time.Second), Data: "garbage"},
		{Seq: 3, Timestamp: base.Add(2 * time.Second), Data: "-4,10"},
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	n, err := ExportCSV(testLines(time.Now()), CSVExportOptions{FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, [][]string{
		{"Signal 1", "Signal 2"},
		{"1.5", "2.75"},
		{"-4", "10"},
	}, readCSV(t, path))
}

func TestExportCSVTimestampsAndFilter(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	path := filepath.Join(t.TempDir(), "out.csv")
	opts := CSVExportOptions{
		FilePath:          path,
		IncludeTimestamps: true,
		FilterByTime:      true,
		StartTime:         base.Add(500 * time.Millisecond),
		EndTime:           base.Add(time.Hour),
	}

	n, err := ExportCSV(testLines(base), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, [][]string{
		{"Timestamp", "Signal 1", "Signal 2"},
		{"2024-05-01 12:00:02.000", "-4", "10"},
	}, readCSV(t, path))
}

func TestExportCSVCustomHeader(t *testing.T) {
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "header.csv")
	require.NoError(t, os.WriteFile(headerPath, []byte("Temp,Humidity\nignored,row\n"), 0644))

	header, err := ParseCustomHeader(headerPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Temp", "Humidity"}, header)

	path := filepath.Join(dir, "out.csv")
	_, err = ExportCSV(testLines(time.Now())[:1], CSVExportOptions{FilePath: path, CustomHeader: header})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Temp", "Humidity"}, {"1.5", "2.75"}}, readCSV(t, path))
}

func TestExportCSVBadPath(t *testing.T) {
	_, err := ExportCSV(nil, CSVExportOptions{FilePath: filepath.Join(t.TempDir(), "missing", "out.csv")})
	assert.ErrorContains(t, err, "failed to create file")

	_, err = ParseCustomHeader(filepath.Join(t.TempDir(), "none.csv"))
	assert.ErrorContains(t, err, "failed to open header file")
}

func TestParseCustomHeaderTrimsAndRejectsBlank(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	header, err := ParseCustomHeader(write("spaced.csv", " Temp , Humidity \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Temp", "Humidity"}, header)

	_, err = ParseCustomHeader(write("blank.csv", " , \n"))
	assert.ErrorContains(t, err, "no column names")

	_, err = ParseCustomHeader(write("empty.csv", ""))
	assert.ErrorContains(t, err, "failed to read header")
}
