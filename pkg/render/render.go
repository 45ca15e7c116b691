package render

import "github.com/matzehuels/tianzige/pkg/layout"

// DefaultLineWidth is the stroke width in points.
const DefaultLineWidth = 0.5

// GuideDash is the dash pattern, in points, of center guides and diagonals.
var GuideDash = []float64{1, 2}

// Style controls how a grid is drawn.
type Style struct {
	Color     RGB
	LineWidth float64 // points; zero means DefaultLineWidth
	InnerGrid bool    // interior cell lines
	Guides    bool    // dashed center cross in each cell, needs InnerGrid
	Diagonals bool    // dashed diagonals in each cell, needs InnerGrid
}

// Render draws g onto s.
func Render(s Surface, g layout.Grid, st Style) {
	lw := st.LineWidth
	if lw <= 0 {
		lw = DefaultLineWidth
	}
	s.SetStrokeColor(st.Color)
	s.SetLineWidth(lw)
	s.SetDash(nil)

	x0, y0 := g.OriginX, g.OriginY
	x1, y1 := x0+g.Width(), y0+g.Height()
	sq := g.SquareSize

	s.Rectangle(Points(x0), Points(y0), Points(g.Width()), Points(g.Height()))

	if !st.InnerGrid {
		return
	}

	for i := 1; i < g.Columns; i++ {
		x := x0 + float64(i)*sq
		s.Line(Points(x), Points(y0), Points(x), Points(y1))
	}
	for j := 1; j < g.Rows; j++ {
		y := y0 + float64(j)*sq
		s.Line(Points(x0), Points(y), Points(x1), Points(y))
	}

	if !st.Guides && !st.Diagonals {
		return
	}
	s.SetDash(GuideDash)

	if st.Guides {
		for i := 0; i < g.Columns; i++ {
			x := x0 + (float64(i)+0.5)*sq
			s.Line(Points(x), Points(y0), Points(x), Points(y1))
		}
		for j := 0; j < g.Rows; j++ {
			y := y0 + (float64(j)+0.5)*sq
			s.Line(Points(x0), Points(y), Points(x1), Points(y))
		}
	}

	if st.Diagonals {
		for j := 0; j < g.Rows; j++ {
			for i := 0; i < g.Columns; i++ {
				cx := x0 + float64(i)*sq
				cy := y0 + float64(j)*sq
				s.Line(Points(cx), Points(cy), Points(cx+sq), Points(cy+sq))
				s.Line(Points(cx), Points(cy+sq), Points(cx+sq), Points(cy))
			}
		}
	}
}
