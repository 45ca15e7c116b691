package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tianzige/pkg/pipeline"
)

// templatesCommand creates the templates command for batch generation.
func (c *CLI) templatesCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "templates [dir]",
		Short: "Generate templates for all paper sizes and standard square sizes",
		Long: `Generate one PDF per paper size (a3, a4, a5, a6, b4, b5, letter, legal)
and square size (10, 12, 15, 20 and 25mm), named tianzige_<page>_<size>mm.pdf.

Combinations whose squares do not fit the page are skipped and listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultTemplateDir
			if len(args) == 1 {
				dir = args[0]
			}
			opts, err := c.options(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runTemplates(cmd.Context(), dir, opts)
		},
	}

	flags.register(cmd, false)
	return cmd
}

// runTemplates generates every template into dir.
func (c *CLI) runTemplates(ctx context.Context, dir string, base pipeline.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Generating templates...")
	spinner.Start()

	write := func(name string, data []byte) error {
		spinner.Update("Generating " + name + "...")
		return writeFileAtomic(c.Logger, filepath.Join(dir, name), data)
	}

	report, err := c.newRunner().GenerateTemplates(ctx, base, write)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d templates", len(report.Created)))

	for _, name := range report.Created {
		printFile(filepath.Join(dir, name))
	}
	printSuccess("Created %d template files in %s/", len(report.Created), dir)

	if len(report.Skipped) > 0 {
		printNewline()
		printWarning("Skipped combinations (squares too large for paper):")
		for _, s := range report.Skipped {
			printDetail("%s with %gmm squares", s.Page, s.SquareSize)
		}
	}
	return nil
}
