package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/thermoicon/pkg/errors"
	"github.com/matzehuels/thermoicon/pkg/icon"
)

// generateOpts holds the flags shared by the root command and generate.
type generateOpts struct {
	config     string // optional TOML batch file
	background string // overrides the config background when set
}

func (o *generateOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "TOML file listing icons to generate")
	cmd.Flags().StringVar(&o.background, "background", "", "badge fill: gradient (default), flat")
}

// generateCommand creates the explicit "generate" subcommand. The root
// command runs the same batch when invoked without a subcommand.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the PWA and Apple touch icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

// runGenerate renders every configured icon in order. The first failure
// stops the batch; icons already written are left in place.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	if err := c.probe(); err != nil {
		if !errs.Is(err, errs.ErrCodeUnsupported) {
			return err
		}
		logger.Debug("raster backend probe failed", "err", err)
		printMissingCapability()
		return nil
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if opts.config != "" {
		logger.Debugf("Loaded %d icons from %s", len(cfg.Icons), opts.config)
	}

	bgName := cfg.Background
	if opts.background != "" {
		bgName = opts.background
	}
	bg, err := icon.ParseBackground(bgName)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidBackground, err, "--background")
	}

	printInfo("Generating PWA icons...")
	prog := newProgress(logger)

	for _, t := range cfg.Icons {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debugf("Rendering %dx%d icon (%s background)", t.Size, t.Size, bg)
		if err := icon.Render(t.Size, t.Path, icon.WithBackground(bg)); err != nil {
			return err
		}
		printSuccess("Created icon: %s (%dx%d)", t.Path, t.Size, t.Size)
	}

	prog.done(fmt.Sprintf("Generated %d icons", len(cfg.Icons)))

	printNewline()
	printSuccess("All icons generated successfully!")
	printNewline()
	printInfo("You can now build and deploy:")
	printNextStep("Build", "npm run build")
	printNextStep("Deploy", "firebase deploy")
	return nil
}
