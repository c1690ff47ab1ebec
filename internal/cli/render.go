package cli

import (
	"context"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/thermoicon/pkg/errors"
	"github.com/matzehuels/thermoicon/pkg/icon"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	size       int
	output     string
	background string
}

// renderCommand creates the render command for a single icon.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{size: 192}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one icon at a given size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "s", opts.size, "icon side length in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file (required)")
	cmd.Flags().StringVar(&opts.background, "background", "", "badge fill: gradient (default), flat")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if err := c.probe(); err != nil {
		if !errs.Is(err, errs.ErrCodeUnsupported) {
			return err
		}
		printMissingCapability()
		return nil
	}

	if err := errs.ValidateSizeLimit(opts.size, maxIconSize); err != nil {
		return err
	}

	bg, err := icon.ParseBackground(opts.background)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidBackground, err, "--background")
	}

	logger.Debugf("Rendering %dx%d icon (%s background)", opts.size, opts.size, bg)
	if err := icon.Render(opts.size, opts.output, icon.WithBackground(bg)); err != nil {
		return err
	}
	printSuccess("Created icon: %s (%dx%d)", opts.output, opts.size, opts.size)
	return nil
}
