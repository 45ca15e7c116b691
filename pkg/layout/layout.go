package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/paper"
)

const (
	// DefaultMinBoxes is the minimum column and row count used when the
	// square size is derived and no explicit minimum was given.
	DefaultMinBoxes = 10

	// Epsilon absorbs floating point error when deciding whether squares fit.
	Epsilon = 1e-6

	// MaxBoxes is the largest column or row count a grid may have.
	MaxBoxes = 1000
)

// Mode identifies which combination of constraints a request carries.
type Mode int

const (
	ModeDefault      Mode = iota // no square size, no minimums
	ModeFixed                    // square size only
	ModeFixedMinimum             // square size and at least one minimum
	ModeFit                      // minimums only
)

var modeNames = [...]string{"default", "fixed", "fixed-minimum", "fit"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Margins are the blank borders of the page in millimeters.
type Margins struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Request describes the grid to lay out.
//
// Optional values use their zero value for "not given": a SquareSize of 0
// lets the resolver derive the size, a MinHorizontal of 0 places no lower
// bound on the column count.
type Request struct {
	Page          paper.Size
	Margins       Margins
	SquareSize    float64
	MinHorizontal int
	MinVertical   int

	// SizeStep, if positive, rounds a derived square size down to a multiple
	// of the step (e.g. 0.5 for half millimeters). Explicit sizes are
	// never rounded.
	SizeStep float64
}

// Mode reports which resolution mode the request selects.
func (r Request) Mode() Mode {
	hasMin := r.MinHorizontal > 0 || r.MinVertical > 0
	switch {
	case r.SquareSize > 0 && hasMin:
		return ModeFixedMinimum
	case r.SquareSize > 0:
		return ModeFixed
	case hasMin:
		return ModeFit
	default:
		return ModeDefault
	}
}

// Grid is a resolved grid geometry in millimeters.
type Grid struct {
	SquareSize   float64 `json:"square_size_mm"`
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	UsableWidth  float64 `json:"usable_width_mm"`
	UsableHeight float64 `json:"usable_height_mm"`
	OriginX      float64 `json:"origin_x_mm"`
	OriginY      float64 `json:"origin_y_mm"`
	Mode         Mode    `json:"mode"`
}

// Width returns the horizontal extent of all columns.
func (g Grid) Width() float64 { return float64(g.Columns) * g.SquareSize }

// Height returns the vertical extent of all rows.
func (g Grid) Height() float64 { return float64(g.Rows) * g.SquareSize }

// LeftoverWidth is the usable width not covered by squares.
func (g Grid) LeftoverWidth() float64 { return g.UsableWidth - g.Width() }

// LeftoverHeight is the usable height not covered by squares.
func (g Grid) LeftoverHeight() float64 { return g.UsableHeight - g.Height() }

// Resolve turns a request into a grid, or explains why it cannot.
//
// Errors carry one of the codes INVALID_PAGE_SIZE, INVALID_INPUT,
// INVALID_MARGINS, GRID_TOO_SMALL, UNSUPPORTED_GEOMETRY, or are a
// [*MinimumBoxesError]. No axis may hold more than MaxBoxes squares.
func Resolve(req Request) (Grid, error) {
	if err := req.validate(); err != nil {
		return Grid{}, err
	}

	uw := req.Page.Width() - req.Margins.Left - req.Margins.Right
	uh := req.Page.Height() - req.Margins.Top - req.Margins.Bottom
	if uw <= 0 || uh <= 0 {
		return Grid{}, errors.New(errors.ErrCodeInvalidMargins,
			"margins leave no usable area on %s: %.1fmm × %.1fmm", req.Page.Describe(), uw, uh)
	}

	mode := req.Mode()
	var size float64
	switch mode {
	case ModeDefault:
		size = fitSize(uw, uh, DefaultMinBoxes, DefaultMinBoxes, req.SizeStep)
	case ModeFit:
		minH, minV := req.MinHorizontal, req.MinVertical
		if minH == 0 {
			minH = DefaultMinBoxes
		}
		if minV == 0 {
			minV = DefaultMinBoxes
		}
		size = fitSize(uw, uh, minH, minV, req.SizeStep)
	case ModeFixed, ModeFixedMinimum:
		size = req.SquareSize
	}

	if err := checkMaxBoxes(uw, uh, size); err != nil {
		return Grid{}, err
	}

	cols, rows := count(uw, size), count(uh, size)
	if cols < 1 || rows < 1 {
		return Grid{}, errors.New(errors.ErrCodeGridTooSmall,
			"%gmm squares do not fit in the usable area of %.1fmm × %.1fmm (%d columns, %d rows)",
			size, uw, uh, cols, rows)
	}

	if mode == ModeFixedMinimum {
		if err := checkMinimums(req, uw, uh, cols, rows); err != nil {
			return Grid{}, err
		}
	}

	return Grid{
		SquareSize:   size,
		Columns:      cols,
		Rows:         rows,
		UsableWidth:  uw,
		UsableHeight: uh,
		OriginX:      req.Margins.Left + (uw-float64(cols)*size)/2,
		OriginY:      req.Margins.Bottom + (uh-float64(rows)*size)/2,
		Mode:         mode,
	}, nil
}

func (r Request) validate() error {
	if !r.Page.Valid() {
		return errors.New(errors.ErrCodeInvalidPageSize,
			"unknown page size %q (must be one of: %s)", r.Page, paper.Names())
	}
	for _, m := range []struct {
		name string
		v    float64
	}{
		{"top margin", r.Margins.Top},
		{"bottom margin", r.Margins.Bottom},
		{"left margin", r.Margins.Left},
		{"right margin", r.Margins.Right},
	} {
		if err := errors.ValidateNonNegative(errors.ErrCodeInvalidMargins, m.name, m.v); err != nil {
			return err
		}
	}
	if err := errors.ValidateOptionalSize("square size", r.SquareSize); err != nil {
		return err
	}
	if err := errors.ValidateOptionalSize("size step", r.SizeStep); err != nil {
		return err
	}
	if err := errors.ValidateOptionalCount("minimum horizontal boxes", r.MinHorizontal); err != nil {
		return err
	}
	if err := errors.ValidateOptionalCount("minimum vertical boxes", r.MinVertical); err != nil {
		return err
	}
	if r.MinHorizontal > MaxBoxes || r.MinVertical > MaxBoxes {
		return errors.New(errors.ErrCodeUnsupportedGeometry,
			"at most %d boxes per row or column are supported (asked for %d × %d)",
			MaxBoxes, r.MinHorizontal, r.MinVertical)
	}
	return nil
}

// checkMaxBoxes rejects square sizes that would give an axis more than
// MaxBoxes squares. It runs before count so the conversion to int cannot
// overflow.
func checkMaxBoxes(uw, uh, size float64) error {
	cols := math.Floor((uw + Epsilon) / size)
	rows := math.Floor((uh + Epsilon) / size)
	if cols <= MaxBoxes && rows <= MaxBoxes {
		return nil
	}
	return errors.New(errors.ErrCodeUnsupportedGeometry,
		"%gmm squares give %.0f columns and %.0f rows; at most %d per axis are supported (use a square size of at least %.3fmm)",
		size, cols, rows, MaxBoxes, math.Max(uw, uh)/MaxBoxes)
}

// count returns how many squares of the given size fit into length u.
func count(u, size float64) int {
	return int(math.Floor((u + Epsilon) / size))
}

// fitSize returns the largest square size with at least minH columns and
// minV rows, rounded down to step when that leaves a positive size.
func fitSize(uw, uh float64, minH, minV int, step float64) float64 {
	size := math.Min(uw/float64(minH), uh/float64(minV))
	if step > 0 {
		if snapped := math.Floor((size+Epsilon)/step) * step; snapped > 0 {
			size = snapped
		}
	}
	return size
}

// checkMinimums validates the fitted counts of a fixed-size request against
// its minimums. Both axes are checked so a single error reports every
// shortfall.
func checkMinimums(req Request, uw, uh float64, cols, rows int) error {
	shortH := req.MinHorizontal > 0 && cols < req.MinHorizontal
	shortV := req.MinVertical > 0 && rows < req.MinVertical
	if !shortH && !shortV {
		return nil
	}

	maxSize := math.Inf(1)
	if req.MinHorizontal > 0 {
		maxSize = math.Min(maxSize, uw/float64(req.MinHorizontal))
	}
	if req.MinVertical > 0 {
		maxSize = math.Min(maxSize, uh/float64(req.MinVertical))
	}

	return &MinimumBoxesError{
		SquareSize:    req.SquareSize,
		Columns:       cols,
		Rows:          rows,
		MinHorizontal: req.MinHorizontal,
		MinVertical:   req.MinVertical,
		MaxSquareSize: maxSize,
	}
}
