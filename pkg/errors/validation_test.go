package errors

import (
	"math"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "data/cpu.csv", false},
		{"valid nested", "runs/2024/01/latency.json", false},
		{"valid filename only", "points.csv", false},
		{"valid with dots", "v1.2.3/series.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"absolute path", "/etc/passwd", true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateCanvas(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		code Code
	}{
		{"valid", 800, 600, ""},
		{"zero width", 0, 600, ErrCodeInvalidConfig},
		{"negative height", 800, -1, ErrCodeInvalidConfig},
		{"nan", math.NaN(), 600, ErrCodeInvalidConfig},
		{"inf", 800, math.Inf(1), ErrCodeInvalidConfig},
		{"too wide", MaxCanvasSide + 1, 600, ErrCodeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCanvas(tt.w, tt.h)
			if got := GetCode(err); got != tt.code {
				t.Errorf("ValidateCanvas(%v, %v) code = %q, want %q (err %v)", tt.w, tt.h, got, tt.code, err)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"#fff", false},
		{"#edc240", false},
		{"rgb(1, 2, 3)", false},
		{"rgba(0,0,0,0.22)", false},

		{"red", true},
		{"#ggg", true},
		{"#12345", true},
		{"rgb(1,2)", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateColor("grid.color", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidConfig,
		ErrCodeInvalidData,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeTooLarge,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeRenderFailed,
		ErrCodeCache,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
