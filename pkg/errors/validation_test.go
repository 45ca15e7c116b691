package errors

import (
	"math"
	"testing"
)

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 15, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative(ErrCodeInvalidMargins, "left margin", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidMargins {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidMargins)
			}
		})
	}
}

func TestValidateOptionalSize(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"absent", 0, false},
		{"given", 12.5, false},
		{"negative", -5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptionalSize("square size", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOptionalSize(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOptionalCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"absent", 0, false},
		{"one", 1, false},
		{"many", 40, false},
		{"negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOptionalCount("min horizontal", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOptionalCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
