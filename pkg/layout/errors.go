package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tianzige/pkg/errors"
)

// MinimumBoxesError reports that an explicit square size cannot satisfy the
// requested minimum counts. It carries what does fit and the largest square
// size that would satisfy every requested minimum.
type MinimumBoxesError struct {
	SquareSize    float64 `json:"square_size_mm"`
	Columns       int     `json:"columns"`
	Rows          int     `json:"rows"`
	MinHorizontal int     `json:"min_horizontal,omitempty"`
	MinVertical   int     `json:"min_vertical,omitempty"`
	MaxSquareSize float64 `json:"max_square_size_mm"`
}

// Error implements the error interface.
func (e *MinimumBoxesError) Error() string {
	var parts []string
	if e.HorizontalShort() {
		parts = append(parts, fmt.Sprintf("only %d horizontal boxes fit at %gmm (need %d)",
			e.Columns, e.SquareSize, e.MinHorizontal))
	}
	if e.VerticalShort() {
		parts = append(parts, fmt.Sprintf("only %d vertical boxes fit at %gmm (need %d)",
			e.Rows, e.SquareSize, e.MinVertical))
	}
	return fmt.Sprintf("%s; use a square size of at most %.2fmm",
		strings.Join(parts, ", "), e.MaxSquareSize)
}

// Code returns MINIMUM_BOXES_UNSATISFIABLE.
func (e *MinimumBoxesError) Code() errors.Code {
	return errors.ErrCodeMinimumBoxes
}

// HorizontalShort reports whether fewer columns fit than requested.
func (e *MinimumBoxesError) HorizontalShort() bool {
	return e.MinHorizontal > 0 && e.Columns < e.MinHorizontal
}

// VerticalShort reports whether fewer rows fit than requested.
func (e *MinimumBoxesError) VerticalShort() bool {
	return e.MinVertical > 0 && e.Rows < e.MinVertical
}
