package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tianzige/pkg/paper"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// gridFlags holds the layout and style flags shared by generate, templates
// and serve. Values only take effect when the flag was set explicitly, so
// the config file is not overridden by flag defaults.
type gridFlags struct {
	pageSize      string
	squareSize    float64
	minHorizontal int
	minVertical   int
	sizeStep      float64
	marginTop     float64
	marginBottom  float64
	marginLeft    float64
	marginRight   float64
	color         string
	lineWidth     float64
	noInnerGrid   bool
	noGuides      bool
	diagonals     bool
}

// register adds the flags to cmd. Square size is omitted for commands that
// choose it themselves.
func (f *gridFlags) register(cmd *cobra.Command, withSize bool) {
	d := pipeline.DefaultOptions()
	fs := cmd.Flags()

	if withSize {
		fs.StringVarP(&f.pageSize, "page-size", "p", d.PageSize, "page size: "+paper.Names())
		_ = cmd.RegisterFlagCompletionFunc("page-size", completePageSizes)
		fs.Float64VarP(&f.squareSize, "size", "s", 0, "square size in mm (default: fit the minimums)")
		fs.Float64Var(&f.sizeStep, "size-step", 0, "round a fitted square size down to a multiple of this (mm)")
	}
	fs.IntVar(&f.minHorizontal, "min-horizontal", 0, "minimum boxes per row")
	fs.IntVar(&f.minVertical, "min-vertical", 0, "minimum boxes per column")
	fs.Float64Var(&f.marginTop, "margin-top", d.MarginTop, "top margin in mm")
	fs.Float64Var(&f.marginBottom, "margin-bottom", d.MarginBottom, "bottom margin in mm")
	fs.Float64Var(&f.marginLeft, "margin-left", d.MarginLeft, "left margin in mm")
	fs.Float64Var(&f.marginRight, "margin-right", d.MarginRight, "right margin in mm")
	fs.StringVarP(&f.color, "color", "c", d.Color, "line color as hex (#RRGGBB)")
	fs.Float64Var(&f.lineWidth, "line-width", d.LineWidth, "line width in points")
	fs.BoolVar(&f.noInnerGrid, "no-inner-grid", false, "draw only the outer border")
	fs.BoolVar(&f.noGuides, "no-guides", false, "omit the dashed cross inside each square")
	fs.BoolVar(&f.diagonals, "diagonals", false, "add dashed diagonals (米字格)")
}

// apply overlays every explicitly set flag onto opts.
func (f *gridFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed

	if changed("page-size") {
		opts.PageSize = f.pageSize
	}
	if changed("size") {
		opts.SquareSize = f.squareSize
	}
	if changed("size-step") {
		opts.SizeStep = f.sizeStep
	}
	if changed("min-horizontal") {
		opts.MinHorizontal = f.minHorizontal
	}
	if changed("min-vertical") {
		opts.MinVertical = f.minVertical
	}
	if changed("margin-top") {
		opts.MarginTop = f.marginTop
	}
	if changed("margin-bottom") {
		opts.MarginBottom = f.marginBottom
	}
	if changed("margin-left") {
		opts.MarginLeft = f.marginLeft
	}
	if changed("margin-right") {
		opts.MarginRight = f.marginRight
	}
	if changed("color") {
		opts.Color = f.color
	}
	if changed("line-width") {
		opts.LineWidth = f.lineWidth
	}
	if changed("no-inner-grid") {
		opts.InnerGrid = !f.noInnerGrid
	}
	if changed("no-guides") {
		opts.Guides = !f.noGuides
	}
	if changed("diagonals") {
		opts.Diagonals = f.diagonals
	}
}

// options resolves defaults, config file and flags into pipeline options.
func (c *CLI) options(cmd *cobra.Command, f *gridFlags) (pipeline.Options, error) {
	opts, err := c.baseOptions()
	if err != nil {
		return opts, err
	}
	f.apply(cmd, &opts)
	return opts, nil
}

// completePageSizes offers the supported page sizes to shell completion.
func completePageSizes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(paper.All))
	for i, s := range paper.All {
		names[i] = string(s) + "\t" + s.Describe()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
