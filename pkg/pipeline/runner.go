package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tianzige/pkg/layout"
	"github.com/matzehuels/tianzige/pkg/observability"
	"github.com/matzehuels/tianzige/pkg/render"
)

// Runner executes the pipeline.
//
// The Runner holds nothing but its logger, so multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Resolve validates opts and computes the grid without rendering.
func (r *Runner) Resolve(ctx context.Context, opts Options) (layout.Grid, error) {
	if err := ctx.Err(); err != nil {
		return layout.Grid{}, err
	}
	if err := opts.Validate(); err != nil {
		return layout.Grid{}, fmt.Errorf("invalid options: %w", err)
	}
	g, _, err := r.resolve(ctx, &opts)
	return g, err
}

// Execute runs the complete resolve → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Page: opts.Page(), Style: opts.Style()}

	// Stage 1: Resolve
	g, elapsed, err := r.resolve(ctx, &opts)
	if err != nil {
		return nil, err
	}
	result.Grid = g
	result.Stats.ResolveTime = elapsed

	r.Logger.Debug("resolved grid",
		"page", result.Page,
		"mode", g.Mode,
		"square_mm", g.SquareSize,
		"columns", g.Columns,
		"rows", g.Rows,
		"duration", elapsed)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, string(result.Page))
	var buf bytes.Buffer
	err = render.WritePDF(&buf, result.Page, g, result.Style)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, string(result.Page), buf.Len(), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.PDF = buf.Bytes()
	result.Stats.Bytes = buf.Len()

	r.Logger.Debug("rendered pdf",
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// resolve runs the layout stage with hooks. opts must be validated.
func (r *Runner) resolve(ctx context.Context, opts *Options) (layout.Grid, time.Duration, error) {
	req := opts.Request()
	page := string(req.Page)

	start := time.Now()
	observability.Pipeline().OnResolveStart(ctx, page)
	g, err := layout.Resolve(req)
	elapsed := time.Since(start)
	observability.Pipeline().OnResolveComplete(ctx, page, req.Mode().String(), elapsed, err)
	if err != nil {
		return layout.Grid{}, elapsed, fmt.Errorf("resolve: %w", err)
	}
	return g, elapsed, nil
}
