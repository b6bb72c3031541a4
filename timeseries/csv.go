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
	YearColumn   string // Column name for years (default: "year")
	VolumeColumn string // Column name for volumes (default: "volume")
	HasHeader    bool   // Whether CSV has a header row (default: true)
	Delimiter    rune   // Field delimiter (default: ',')
	SkipRows     int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		YearColumn:   "year",
		VolumeColumn: "volume",
		HasHeader:    true,
		Delimiter:    ',',
	}
}

// LoadCSV loads a series of (year, volume) rows from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a series from an io.Reader. Rows whose year or
// volume fail to parse are skipped. The returned series is sorted oldest
// first with growth rates computed, exactly as with Parse.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	yearIdx, volumeIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		yearIdx, volumeIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case strings.EqualFold(h, opts.YearColumn) || strings.EqualFold(h, "year"):
				if yearIdx == -1 {
					yearIdx = i
				}
			case strings.EqualFold(h, opts.VolumeColumn) || strings.EqualFold(h, "volume") || strings.EqualFold(h, "value"):
				if volumeIdx == -1 {
					volumeIdx = i
				}
			}
		}
		if yearIdx == -1 || volumeIdx == -1 {
			return nil, errors.New("year or volume column not found in CSV header")
		}
	}

	var years []int
	var volumes []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if yearIdx >= len(record) || volumeIdx >= len(record) {
			continue
		}

		yearStr := strings.TrimSpace(strings.Trim(record[yearIdx], "\""))
		volStr := strings.TrimSpace(strings.Trim(record[volumeIdx], "\""))
		if volStr == "" || volStr == "NA" || volStr == "NaN" || volStr == "null" {
			continue
		}

		year, err := strconv.Atoi(yearStr)
		if err != nil {
			continue
		}
		vol, err := strconv.ParseFloat(volStr, 64)
		if err != nil {
			continue
		}

		years = append(years, year)
		volumes = append(volumes, vol)
	}

	if len(years) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return New(years, volumes), nil
}

// SaveCSV writes the series to a CSV file as year,volume,growth_rate rows.
func SaveCSV(s Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	writer.WriteString("year,volume,growth_rate\n")
	for _, obs := range s {
		writer.WriteString(strconv.Itoa(obs.Year))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(obs.Volume, 'f', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(obs.GrowthRate, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return nil
}
