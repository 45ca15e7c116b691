package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/paper"
)

// TemplatePageSizes are the page sizes covered by GenerateTemplates.
var TemplatePageSizes = []paper.Size{
	paper.A3, paper.A4, paper.A5, paper.A6,
	paper.B4, paper.B5, paper.Letter, paper.Legal,
}

// TemplateSquareSizes are the square sizes, in millimeters, covered by
// GenerateTemplates.
var TemplateSquareSizes = []float64{10, 12, 15, 20, 25}

// TemplateName returns the file name for one template, e.g.
// "tianzige_a4_15mm.pdf".
func TemplateName(page paper.Size, squareSize float64) string {
	return fmt.Sprintf("tianzige_%s_%smm.pdf", page, strconv.FormatFloat(squareSize, 'f', -1, 64))
}

// ArtifactWriter stores one generated document under the given name.
type ArtifactWriter func(name string, data []byte) error

// Skipped describes a template combination that does not fit its page.
type Skipped struct {
	Page       paper.Size
	SquareSize float64
	Reason     error
}

// TemplateReport summarizes a GenerateTemplates run.
type TemplateReport struct {
	Created []string
	Skipped []Skipped
}

// GenerateTemplates renders every page size × square size combination with
// the remaining settings taken from base. Combinations whose squares do not
// fit (GRID_TOO_SMALL or MINIMUM_BOXES_UNSATISFIABLE) are skipped; any other
// error aborts the run. Templates are generated one after another and ctx is
// checked between them.
func (r *Runner) GenerateTemplates(ctx context.Context, base Options, write ArtifactWriter) (*TemplateReport, error) {
	report := &TemplateReport{}

	for _, page := range TemplatePageSizes {
		for _, size := range TemplateSquareSizes {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			opts := base
			opts.PageSize = string(page)
			opts.SquareSize = size

			name := TemplateName(page, size)
			result, err := r.Execute(ctx, opts)
			if errors.Is(err, errors.ErrCodeGridTooSmall) || errors.Is(err, errors.ErrCodeMinimumBoxes) {
				r.Logger.Debug("skipping template", "page", page, "square_mm", size, "reason", err)
				report.Skipped = append(report.Skipped, Skipped{Page: page, SquareSize: size, Reason: err})
				continue
			}
			if err != nil {
				return report, fmt.Errorf("%s: %w", name, err)
			}

			if err := write(name, result.PDF); err != nil {
				return report, fmt.Errorf("write %s: %w", name, err)
			}
			report.Created = append(report.Created, name)
			r.Logger.Debug("generated template", "file", name, "columns", result.Grid.Columns, "rows", result.Grid.Rows)
		}
	}

	return report, nil
}
