package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

type exported struct {
	Label string  `json:"label,omitempty"`
	Data  [][]any `json:"data"`
}

// WriteJSON encodes datasets in the labelled JSON shape and writes them to
// w. Gap rows are written as null and timestamps as RFC 3339 strings.
func WriteJSON(ds []Dataset, w io.Writer) error {
	out := make([]exported, len(ds))
	for i, d := range ds {
		out[i] = exported{Label: d.Label, Data: make([][]any, len(d.Rows))}
		for j, row := range d.Rows {
			if row == nil {
				continue
			}
			vals := make([]any, len(row))
			for k, v := range row {
				if t, ok := v.(time.Time); ok {
					v = t.UTC().Format(time.RFC3339Nano)
				}
				vals[k] = v
			}
			out[i].Data[j] = vals
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes datasets to a file at path.
func ExportJSON(ds []Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(ds, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
