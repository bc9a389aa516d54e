package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/stackplot/pkg/core/series"
	"github.com/matzehuels/stackplot/pkg/errors"
)

// Dataset is one imported series.
type Dataset struct {
	Label string
	Rows  []series.Row
}

// Series converts the dataset into an unstyled series.
func (d Dataset) Series() *series.Series {
	return &series.Series{Label: d.Label, Data: d.Rows}
}

// Import reads the data file at path, choosing the format by extension.
func Import(path string) ([]Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "data file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON(f)
	case ".csv":
		return ReadCSV(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported data file %s (use .json or .csv)", path)
	}
}

// =============================================================================
// JSON
// =============================================================================

type labelled struct {
	Label string            `json:"label,omitempty"`
	Data  []json.RawMessage `json:"data"`
}

// ReadJSON decodes series data from r. See the package documentation for
// the accepted shapes. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "empty data")
	}

	if raw[0] == '{' {
		var l labelled
		if err := decode(raw, &l); err != nil {
			return nil, err
		}
		d, err := datasetFrom(l, 0)
		if err != nil {
			return nil, err
		}
		return []Dataset{d}, nil
	}

	var items []json.RawMessage
	if err := decode(raw, &items); err != nil {
		return nil, err
	}
	if len(items) > 0 && bytes.HasPrefix(bytes.TrimSpace(items[0]), []byte("{")) {
		out := make([]Dataset, 0, len(items))
		for i, item := range items {
			var l labelled
			if err := decode(item, &l); err != nil {
				return nil, fmt.Errorf("series %d: %w", i, err)
			}
			d, err := datasetFrom(l, i)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	}

	d, err := datasetFrom(labelled{Data: items}, 0)
	if err != nil {
		return nil, err
	}
	return []Dataset{d}, nil
}

func decode(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidData, err, "decode JSON data")
	}
	return nil
}

func datasetFrom(l labelled, index int) (Dataset, error) {
	d := Dataset{Label: l.Label, Rows: make([]series.Row, 0, len(l.Data))}
	if len(l.Data) > errors.MaxPoints {
		return Dataset{}, errors.New(errors.ErrCodeTooLarge, "series %d has %d rows (max %d)", index, len(l.Data), errors.MaxPoints)
	}
	for i, item := range l.Data {
		var v any
		if err := decode(item, &v); err != nil {
			return Dataset{}, fmt.Errorf("series %d row %d: %w", index, i, err)
		}
		d.Rows = append(d.Rows, ParseRow(v))
	}
	return d, nil
}

// ParseRow turns a decoded JSON or TOML value into a row. Arrays become
// [x, y] or [x, y, base] rows, scalars become y-only rows and objects or
// nil become gaps. RFC 3339 strings are read as timestamps.
func ParseRow(v any) series.Row {
	switch v := v.(type) {
	case nil, map[string]any:
		return nil
	case []any:
		row := make(series.Row, len(v))
		for i, e := range v {
			row[i] = value(e)
		}
		return row
	default:
		return series.Row{value(v)}
	}
}

// value converts RFC 3339 strings to time.Time and leaves everything else
// for the series normaliser to coerce.
func value(v any) any {
	if s, ok := v.(string); ok {
		if t, ok := parseTime(s); ok {
			return t
		}
	}
	return v
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// =============================================================================
// CSV
// =============================================================================

// ReadCSV decodes series data from r: the first column is x and each
// further column is one series. ReadCSV does not close r.
func ReadCSV(r io.Reader) ([]Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "decode CSV data")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "empty data")
	}
	if len(records) > errors.MaxPoints {
		return nil, errors.New(errors.ErrCodeTooLarge, "%d rows (max %d)", len(records), errors.MaxPoints)
	}

	cols := 0
	for _, rec := range records {
		cols = max(cols, len(rec))
	}
	if cols < 2 {
		return nil, errors.New(errors.ErrCodeInvalidData, "CSV data needs an x column and at least one series column")
	}

	out := make([]Dataset, cols-1)
	if isHeader(records[0]) {
		for j := 1; j < cols; j++ {
			if j < len(records[0]) {
				out[j-1].Label = strings.TrimSpace(records[0][j])
			}
		}
		records = records[1:]
	}

	for _, rec := range records {
		x := cell(rec, 0)
		for j := 1; j < cols; j++ {
			y := cell(rec, j)
			if x == nil || y == nil {
				out[j-1].Rows = append(out[j-1].Rows, nil)
				continue
			}
			out[j-1].Rows = append(out[j-1].Rows, series.Row{x, y})
		}
	}
	return out, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	s := strings.TrimSpace(rec[0])
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	_, isTime := parseTime(s)
	return !isTime
}

// cell returns the value at column j, or nil when the cell is missing or
// empty.
func cell(rec []string, j int) any {
	if j >= len(rec) {
		return nil
	}
	s := strings.TrimSpace(rec[j])
	if s == "" {
		return nil
	}
	return value(s)
}
