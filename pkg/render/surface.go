package render

// Surface receives stroke commands in PDF points.
// Every Rectangle and Line call is stroked with the state set before it.
type Surface interface {
	SetStrokeColor(c RGB)
	SetLineWidth(w float64)
	// SetDash sets the dash pattern; an empty pattern draws solid lines.
	SetDash(pattern []float64)
	Rectangle(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
}
