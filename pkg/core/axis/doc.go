// Package axis holds the per-axis state of a plot: options, data extent,
// resolved range, ticks, layout box and the data-to-pixel transform.
//
// An [Axis] is created lazily by a [Set] the first time a series refers to
// it, and is then filled in by several passes:
//
//  1. The series package scans data into [Axis.DataMin] and [Axis.DataMax].
//  2. [Axis.ResolveRange] turns the extent plus the options into a usable
//     [Axis.Min]/[Axis.Max] pair.
//  3. The ticks package fills [Axis.Ticks], [Axis.TickStep] and
//     [Axis.TickDecimals].
//  4. The layout package measures labels and assigns [Axis.Box].
//  5. [Axis.SetTransform] fixes the pixel mapping used by [Axis.P2C] and
//     [Axis.C2P].
//
// Invariant: once ResolveRange has run, Min < Max.
//
// Values are plain float64. Time axes hold milliseconds since the Unix
// epoch, interpreted in UTC.
package axis
