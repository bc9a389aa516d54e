package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackplot/pkg/io"
)

// dataCommand groups the data file helpers.
func (c *CLI) dataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Work with chart data files",
	}
	cmd.AddCommand(c.dataConvertCommand())
	return cmd
}

// dataConvertCommand creates "data convert", which reads a CSV or JSON
// data file and writes the series as JSON.
func (c *CLI) dataConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert [input] [output.json]",
		Short:   "Convert a CSV or JSON data file to series JSON",
		Example: "  stackplot data convert metrics.csv metrics.json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			ds, err := io.Import(args[0])
			if err != nil {
				return err
			}
			if err := io.ExportJSON(ds, args[1]); err != nil {
				return err
			}

			rows := 0
			for _, d := range ds {
				rows += len(d.Rows)
				logger.Debug("converted series", "label", d.Label, "rows", len(d.Rows))
			}
			printSuccess("Converted %d series (%d rows)", len(ds), rows)
			printFile(args[1])
			return nil
		},
	}
}
