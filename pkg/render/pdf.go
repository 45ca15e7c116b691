package render

import (
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/layout"
	"github.com/matzehuels/tianzige/pkg/paper"
)

// WritePDF renders g as a one-page PDF of the given page size to w.
func WritePDF(w io.Writer, page paper.Size, g layout.Grid, st Style) error {
	if !page.Valid() {
		return errors.New(errors.ErrCodeInvalidPageSize, "unknown page size %q", page)
	}
	mediaBox := &pdf.Rectangle{URx: Points(page.Width()), URy: Points(page.Height())}

	p, err := document.WriteSinglePage(w, mediaBox, pdf.V1_7, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "open pdf page")
	}

	Render(&pdfSurface{page: p}, g, st)

	if err := p.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return nil
}

// pdfSurface strokes commands through a seehuhn content stream builder.
type pdfSurface struct {
	page *document.Page
}

func (s *pdfSurface) SetStrokeColor(c RGB) {
	s.page.SetStrokeColor(color.DeviceRGB(c.R, c.G, c.B))
}

func (s *pdfSurface) SetLineWidth(w float64) {
	s.page.SetLineWidth(w)
}

func (s *pdfSurface) SetDash(pattern []float64) {
	if pattern == nil {
		pattern = []float64{}
	}
	s.page.SetLineDash(pattern, 0)
}

func (s *pdfSurface) Rectangle(x, y, w, h float64) {
	s.page.Rectangle(x, y, w, h)
	s.page.Stroke()
}

func (s *pdfSurface) Line(x1, y1, x2, y2 float64) {
	s.page.MoveTo(x1, y1)
	s.page.LineTo(x2, y2)
	s.page.Stroke()
}
