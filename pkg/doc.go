// Package pkg provides the core libraries for Tianzige practice grids.
//
// # Overview
//
// Tianzige lays out a grid of square cells on a page and draws it as a
// one-page PDF. The pkg directory is organized into these areas:
//
//  1. [paper] - Supported page sizes and their dimensions
//  2. [layout] - Grid geometry (square size, counts, centering)
//  3. [render] - Drawing a grid onto a surface, and the PDF backend
//  4. [pipeline] - Orchestration (options → resolve → render)
//  5. [config] - Config file loading
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The data flow through Tianzige:
//
//	Options (flags / config / query)
//	         ↓
//	    [pipeline] package (defaults + validation)
//	         ↓
//	    [layout] package (resolve grid geometry)
//	         ↓
//	    [render] package (draw lines, write PDF)
//	         ↓
//	    PDF bytes
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/tianzige/pkg/pipeline"
//	)
//
//	opts := pipeline.DefaultOptions()
//	opts.PageSize = "a5"
//	opts.MinHorizontal = 12
//
//	result, err := pipeline.NewRunner(nil).Execute(context.Background(), opts)
//	if err != nil {
//	    return err
//	}
//	// result.PDF holds the document, result.Grid the geometry.
//
// # Geometry Only
//
// The layout package is pure and can be used without rendering:
//
//	g, err := layout.Resolve(layout.Request{
//	    Page:       paper.A4,
//	    Margins:    layout.Margins{Top: 15, Bottom: 15, Left: 20, Right: 10},
//	    SquareSize: 18,
//	})
//	// g.Columns == 10, g.Rows == 14
//
// [paper]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/paper
// [layout]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/tianzige/pkg/buildinfo
package pkg
