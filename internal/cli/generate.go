package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// generateCommand creates the generate command for rendering a single grid.
func (c *CLI) generateCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "generate [output.pdf]",
		Short: "Generate a practice grid PDF",
		Long: `Generate a practice grid PDF.

Without --size the largest square size is chosen that still fits
--min-horizontal by --min-vertical boxes (10 × 10 when neither is given).
With --size the squares have exactly that size; any minimums given are
then checked and reported when they cannot be met.`,
		Example: `  tianzige generate
  tianzige generate -p a5 -s 20 practice.pdf
  tianzige generate --min-horizontal 12 --min-vertical 16 --diagonals`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := defaultOutput
			if len(args) == 1 {
				output = args[0]
			}
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), output, opts)
		},
	}

	flags.register(cmd, true)
	return cmd
}

// runGenerate renders one grid and writes it to output.
func (c *CLI) runGenerate(ctx context.Context, output string, opts pipeline.Options) error {
	prog := newProgress(c.Logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(c.Logger, output, result.PDF); err != nil {
		return err
	}
	prog.done("Rendered " + output)

	g := result.Grid
	printSuccess("Generated Tianzige grid")
	printFile(output)
	printKeyValue("Page", result.Page.Describe())
	printKeyValue("Squares", fmt.Sprintf("%d × %d at %gmm", g.Columns, g.Rows, g.SquareSize))
	printKeyValue("Mode", g.Mode.String())
	return nil
}
