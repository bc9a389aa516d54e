package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Limits for chart input. They keep a single request from allocating an
// unbounded canvas or point buffer.
const (
	MaxCanvasSide = 8192
	MaxSeries     = 256
	MaxPoints     = 1_000_000
)

// ValidatePath validates a data file path referenced from a chart.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the chart)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateCanvas checks that a canvas size is positive, finite and within
// MaxCanvasSide on both sides.
func ValidateCanvas(width, height float64) error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) || v.val <= 0 {
			return New(ErrCodeInvalidConfig, "%s must be a positive number, got %v", v.name, v.val)
		}
		if v.val > MaxCanvasSide {
			return New(ErrCodeTooLarge, "%s %v exceeds the limit of %d pixels", v.name, v.val, MaxCanvasSide)
		}
	}
	return nil
}

// colorRegex matches the colour forms the renderer understands.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|rgba?\(\s*[0-9.]+\s*(,\s*[0-9.]+\s*){2,3}\))$`)

// ValidateColor validates a colour string. Empty strings are allowed and
// mean "use the default".
func ValidateColor(field, color string) error {
	if color == "" {
		return nil
	}
	if !colorRegex.MatchString(strings.TrimSpace(color)) {
		return New(ErrCodeInvalidConfig, "%s: unsupported colour %q (use #rgb, #rrggbb, rgb() or rgba())", field, color)
	}
	return nil
}
