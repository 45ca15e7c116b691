// Package layout resolves a grid request into concrete page geometry.
//
// # Overview
//
// A [Request] names a page size, margins and any combination of an explicit
// square size and minimum column/row counts. [Resolve] reconciles those
// constraints into a [Grid]: the square size, how many squares fit in each
// direction, and where the grid starts so that it is centered inside the
// usable area (page minus margins).
//
// All values are millimeters. Coordinates follow the PDF convention: the
// origin is the bottom-left corner of the page and y grows upwards.
//
// # Resolution Modes
//
// Which constraints are present selects a [Mode] up front:
//
//   - [ModeDefault]: nothing given. Behaves like [ModeFit] with 10×10 minimums.
//   - [ModeFixed]: square size only. As many squares as fit; fails with
//     GRID_TOO_SMALL when not even one fits.
//   - [ModeFixedMinimum]: square size plus minimums. Like [ModeFixed], then
//     the minimums are checked; a shortfall is reported as a
//     [*MinimumBoxesError] which carries the largest square size that would
//     have worked.
//   - [ModeFit]: minimums only. The largest square size meeting both
//     minimums is derived, so the minimums hold by construction.
//
// Nothing is ever shrunk silently: an infeasible request is an error.
//
// # Usage
//
//	g, err := layout.Resolve(layout.Request{
//	    Page:    paper.A4,
//	    Margins: layout.Margins{Top: 15, Bottom: 15, Left: 20, Right: 10},
//	})
//	// g.SquareSize == 18, g.Columns == 10, g.Rows == 14
package layout
