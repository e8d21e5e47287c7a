package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
	"github.com/chazuruo/founder/internal/export"
)

// ExportOptions contains the options for the export command.
type ExportOptions struct {
	ConfigPath  string
	HistoryPath string
	Format      string
	Out         string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export history entries as JSON or YAML",
		Long: `Export history entries with their existence state and modification
time in a machine-readable format.`,
		Example: `  # Export as JSON to stdout
  founder export

  # Export as YAML to a file
  founder export --format yaml --out history.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", "json", "export format (json, yaml)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output file (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions) error {
	exporter, err := export.NewExporter(export.Format(opts.Format))
	if err != nil {
		return err
	}

	// An export keeps raw file order and duplicates: it is a dump, not a view.
	histPath, err := app.HistoryFile(opts.ConfigPath, opts.HistoryPath)
	if err != nil {
		return err
	}

	w := os.Stdout
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return exporter.ExportHistory(w, histPath)
}
