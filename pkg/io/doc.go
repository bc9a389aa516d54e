// Package io reads and writes series data files.
//
// # Overview
//
// Charts can keep their data inline or point at a file. This package
// turns such files into [Dataset] values whose rows feed
// [series.Series.Data] directly. Two formats are supported:
//
//   - JSON: flot-style row arrays, optionally labelled
//   - CSV: one x column followed by one column per series
//
// # JSON Format
//
// Three shapes are accepted. A bare row array is a single unlabelled
// series:
//
//	[[0, 1], [1, 3], null, [3, 2]]
//
// An object labels a series, and an array of objects holds several:
//
//	[
//	  {"label": "cpu",  "data": [[0, 1], [1, 3]]},
//	  {"label": "disk", "data": [4, 5, 6]}
//	]
//
// Rows are [x, y], [x, y, base], a lone y value (x becomes the row
// index) or null for a gap. Numbers keep their exact text via
// json.Number; strings in RFC 3339 form are read as timestamps and end up
// as epoch milliseconds on the axis.
//
// # CSV Format
//
// The first column holds x values; every further column is one series.
// A header row is detected when its first x cell is not a number or a
// timestamp, and it supplies series labels. Empty cells become gaps.
//
//	time,cpu,disk
//	2024-01-01T00:00:00Z,0.5,12
//	2024-01-01T01:00:00Z,0.7,
//
// # Import
//
// Use [Import] to read a file by extension, or [ReadJSON] / [ReadCSV] to
// read from any io.Reader. Failures carry codes from pkg/errors:
// FILE_NOT_FOUND for missing files, INVALID_FORMAT for unknown extensions
// and INVALID_DATA for malformed content.
//
// # Export
//
// [WriteJSON] writes datasets in the labelled JSON shape, so any import
// can be re-read by [ReadJSON]. Timestamps are written as RFC 3339
// strings.
//
// [series.Series.Data]: github.com/matzehuels/stackplot/pkg/core/series.Series
package io
