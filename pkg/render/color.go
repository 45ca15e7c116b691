package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tianzige/pkg/errors"
)

// RGB is a color with channels in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// Gray is the default line color, #808080.
var Gray = RGB{128.0 / 255, 128.0 / 255, 128.0 / 255}

// ParseHexColor parses a "#RRGGBB" string. The leading '#' may be omitted.
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, errors.New(errors.ErrCodeInvalidColor,
			"invalid hex color %q: use format #RRGGBB", s)
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, errors.New(errors.ErrCodeInvalidColor,
				"invalid hex color %q: %q is not a hex byte", s, hex[2*i:2*i+2])
		}
		ch[i] = float64(v) / 255
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
