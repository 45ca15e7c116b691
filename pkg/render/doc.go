// Package render draws a resolved grid onto a drawing surface.
//
// # Overview
//
// Rendering is split in two so that geometry can be tested without a PDF
// backend:
//
//   - [Render] walks a [layout.Grid] and issues stroke commands against a
//     [Surface]. Geometry stays in millimeters until the moment a command is
//     issued, where it is converted to points with [Points].
//   - A Surface turns those commands into output. [WritePDF] provides the
//     PDF surface; [Recorder] keeps the commands in memory for inspection.
//
// # What Gets Drawn
//
//   - One outer rectangle around the whole grid.
//   - With [Style.InnerGrid]: the interior cell lines, columns-1 vertical
//     and rows-1 horizontal.
//   - With InnerGrid and [Style.Guides]: dashed center lines through every
//     column and row, giving each cell the 田 cross.
//   - With InnerGrid and [Style.Diagonals]: dashed diagonals in every cell.
//
// # Usage
//
//	color, err := render.ParseHexColor("#808080")
//	style := render.Style{Color: color, LineWidth: 0.5, InnerGrid: true, Guides: true}
//	err = render.WritePDF(w, paper.A4, grid, style)
//
// [layout.Grid]: github.com/matzehuels/tianzige/pkg/layout.Grid
package render
