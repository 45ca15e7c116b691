package render

import (
	"math"
	"testing"

	"github.com/matzehuels/tianzige/pkg/errors"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{"#FF0000", RGB{1, 0, 0}, false},
		{"00FF00", RGB{0, 1, 0}, false},
		{"#0000ff", RGB{0, 0, 1}, false},
		{"#808080", Gray, false},
		{"#ZZZZZZ", RGB{}, true},
		{"#GHIJKL", RGB{}, true},
		{"invalid", RGB{}, true},
		{"#12345", RGB{}, true},
		{"#1234567", RGB{}, true},
		{"", RGB{}, true},
		{"#+1+1+1", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColor)
				}
				return
			}
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGrayValue(t *testing.T) {
	if math.Abs(Gray.R-0.5019607843137255) > 1e-9 {
		t.Errorf("Gray.R = %v, want 0.50196...", Gray.R)
	}
}

func TestHex(t *testing.T) {
	for _, s := range []string{"#808080", "#000000", "#ffffff", "#1a2b3c"} {
		c, err := ParseHexColor(s)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) error = %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
	if got := (RGB{R: 2, G: -1, B: 0.5}).Hex(); got != "#ff0080" {
		t.Errorf("Hex() clamps = %q, want #ff0080", got)
	}
}

func TestPoints(t *testing.T) {
	if got := Points(25.4); math.Abs(got-72) > 1e-9 {
		t.Errorf("Points(25.4) = %v, want 72", got)
	}
	if got := Points(210); math.Abs(got-595.2755905511812) > 1e-6 {
		t.Errorf("Points(210) = %v, want 595.276", got)
	}
	if Points(0) != 0 {
		t.Error("Points(0) should be 0")
	}
}
