// Package series turns raw data rows into normalised point buffers.
//
// Normalisation coerces every value to a float64, marks records with a
// missing required value as gaps, replaces infinities with
// [axis.Sentinel], inserts the intermediate corners of step lines, and
// adds a baseline field when a series draws bars or filled areas.
//
// [AccumulateExtents] then folds the normalised values into the data
// extent of the axes each series is bound to.
package series
