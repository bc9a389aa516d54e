package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplot/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands
// registered. Every command finds the CLI logger in its context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackplot draws charts from TOML descriptions",
		Long:         `Stackplot renders line, bar and point charts described in TOML or JSON files to SVG, PNG or PDF, either from the command line or as an HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.ticksCommand())
	root.AddCommand(c.dataCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
