// Package pipeline provides the resolve → render pipeline for tianzige.
//
// This package turns user-level options into a finished PDF and is shared by
// the CLI, the batch template generator and the HTTP API. By centralizing
// defaults and validation here, every entry point behaves the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Resolve: compute the grid geometry ([layout.Resolve])
//  2. Render: draw the grid into a one-page PDF ([render.WritePDF])
//
// Rendering only starts after resolution fully succeeded, and the PDF is
// built in memory, so a failed run never produces partial output.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.PageSize = "a5"
//	opts.SquareSize = 20
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("grid.pdf", result.PDF, 0o644)
//
// [layout.Resolve]: github.com/matzehuels/tianzige/pkg/layout.Resolve
// [render.WritePDF]: github.com/matzehuels/tianzige/pkg/render.WritePDF
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/layout"
	"github.com/matzehuels/tianzige/pkg/paper"
	"github.com/matzehuels/tianzige/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, templates and API
// =============================================================================

const (
	// DefaultPageSize is the default page size name.
	DefaultPageSize = string(paper.A4)

	// DefaultColor is the default line color.
	DefaultColor = "#808080"

	// Default margins in millimeters. The wider left margin leaves room
	// for binding.
	DefaultMarginTop    = 15.0
	DefaultMarginBottom = 15.0
	DefaultMarginLeft   = 20.0
	DefaultMarginRight  = 10.0

	// DefaultLineWidth is the stroke width in points.
	DefaultLineWidth = render.DefaultLineWidth
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one grid.
// This struct supports JSON serialization for API responses.
//
// Zero values of SquareSize, MinHorizontal, MinVertical and SizeStep mean
// "not given"; see [layout.Request].
type Options struct {
	// Layout options
	PageSize      string  `json:"page_size"`
	MarginTop     float64 `json:"margin_top"`
	MarginBottom  float64 `json:"margin_bottom"`
	MarginLeft    float64 `json:"margin_left"`
	MarginRight   float64 `json:"margin_right"`
	SquareSize    float64 `json:"square_size,omitempty"`
	MinHorizontal int     `json:"min_horizontal,omitempty"`
	MinVertical   int     `json:"min_vertical,omitempty"`
	SizeStep      float64 `json:"size_step,omitempty"`

	// Render options
	Color     string  `json:"color"`
	LineWidth float64 `json:"line_width"`
	InnerGrid bool    `json:"inner_grid"`
	Guides    bool    `json:"guides"`
	Diagonals bool    `json:"diagonals"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	page  paper.Size
	color render.RGB
}

// DefaultOptions returns the options of a plain A4 practice sheet.
func DefaultOptions() Options {
	return Options{
		PageSize:     DefaultPageSize,
		MarginTop:    DefaultMarginTop,
		MarginBottom: DefaultMarginBottom,
		MarginLeft:   DefaultMarginLeft,
		MarginRight:  DefaultMarginRight,
		Color:        DefaultColor,
		LineWidth:    DefaultLineWidth,
		InnerGrid:    true,
		Guides:       true,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the resolved geometry.
	Grid layout.Grid

	// Page is the page size the grid was laid out on.
	Page paper.Size

	// Style is the style the grid was drawn with.
	Style render.Style

	// PDF is the complete document.
	PDF []byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ResolveTime time.Duration
	RenderTime  time.Duration
	Bytes       int
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills empty string and width fields with their defaults.
// Boolean and numeric constraints are left alone: zero is meaningful there.
func (o *Options) SetDefaults() {
	if o.PageSize == "" {
		o.PageSize = DefaultPageSize
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.LineWidth == 0 {
		o.LineWidth = DefaultLineWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field that can be checked
// without resolving the layout. It parses the page size and color again on
// every call, so a copy can be modified and re-validated.
func (o *Options) Validate() error {
	o.SetDefaults()

	page, err := paper.Parse(o.PageSize)
	if err != nil {
		return err
	}
	color, err := render.ParseHexColor(o.Color)
	if err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidInput, "line width", o.LineWidth); err != nil {
		return err
	}

	o.page = page
	o.color = color
	return nil
}

// Request converts the layout options. Call Validate first.
func (o *Options) Request() layout.Request {
	return layout.Request{
		Page: o.page,
		Margins: layout.Margins{
			Top:    o.MarginTop,
			Bottom: o.MarginBottom,
			Left:   o.MarginLeft,
			Right:  o.MarginRight,
		},
		SquareSize:    o.SquareSize,
		MinHorizontal: o.MinHorizontal,
		MinVertical:   o.MinVertical,
		SizeStep:      o.SizeStep,
	}
}

// Style converts the render options. Call Validate first.
func (o *Options) Style() render.Style {
	return render.Style{
		Color:     o.color,
		LineWidth: o.LineWidth,
		InnerGrid: o.InnerGrid,
		Guides:    o.Guides,
		Diagonals: o.Diagonals,
	}
}

// Page returns the parsed page size. Call Validate first.
func (o *Options) Page() paper.Size {
	return o.page
}
