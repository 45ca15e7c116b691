// Package paper provides the fixed table of supported page sizes.
//
// All dimensions are in millimeters, portrait orientation. The table is
// static data; there is nothing to initialize or tear down.
package paper

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tianzige/pkg/errors"
)

// Size identifies one of the supported page sizes.
type Size string

// Supported page sizes.
const (
	A3     Size = "a3"
	A4     Size = "a4"
	A5     Size = "a5"
	A6     Size = "a6"
	B4     Size = "b4"
	B5     Size = "b5"
	Letter Size = "letter"
	Legal  Size = "legal"
)

// dimensions holds width and height in millimeters.
type dimensions struct{ w, h float64 }

var table = map[Size]dimensions{
	A3:     {297, 420},
	A4:     {210, 297},
	A5:     {148, 210},
	A6:     {105, 148},
	B4:     {250, 353},
	B5:     {176, 250},
	Letter: {215.9, 279.4},
	Legal:  {215.9, 355.6},
}

// All lists every supported size in a stable order.
var All = []Size{A3, A4, A5, A6, B4, B5, Letter, Legal}

// Parse converts a user-supplied name such as "A4" or "letter" to a Size.
func Parse(name string) (Size, error) {
	s := Size(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := table[s]; !ok {
		return "", errors.New(errors.ErrCodeInvalidPageSize,
			"unknown page size %q (must be one of: %s)", name, Names())
	}
	return s, nil
}

// Names returns the supported size names joined by ", ".
func Names() string {
	names := make([]string, len(All))
	for i, s := range All {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Valid reports whether s is in the table.
func (s Size) Valid() bool {
	_, ok := table[s]
	return ok
}

// Width returns the page width in millimeters, or 0 for an unknown size.
func (s Size) Width() float64 { return table[s].w }

// Height returns the page height in millimeters, or 0 for an unknown size.
func (s Size) Height() float64 { return table[s].h }

// String returns the display name, e.g. "A4" or "Letter".
func (s Size) String() string {
	switch s {
	case Letter, Legal:
		return strings.ToUpper(string(s[:1])) + string(s[1:])
	}
	return strings.ToUpper(string(s))
}

// Describe returns "A4 (210×297mm)".
func (s Size) Describe() string {
	return fmt.Sprintf("%s (%g×%gmm)", s, s.Width(), s.Height())
}
