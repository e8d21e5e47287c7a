package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
)

// PruneOptions contains the options for the prune command.
type PruneOptions struct {
	ConfigPath  string
	HistoryPath string
	MaxLines    int
	Force       bool
	JSON        bool
}

// NewPruneCommand creates the prune command.
func NewPruneCommand() *cobra.Command {
	opts := &PruneOptions{}

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Deduplicate the history and cap its size",
		Long: `Deduplicate the history and cap its size.

Duplicate paths are collapsed to their most recent occurrence, and the
history is truncated to half the configured maximum. Pruning only runs
once the history has reached the maximum, so a long time passes between
prunes; use --force to prune regardless.`,
		Example: `  # Prune if the history has reached the threshold
  founder prune

  # Prune now, regardless of size
  founder prune --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")
	cmd.Flags().IntVar(&opts.MaxLines, "max-lines", 0, "prune threshold (default from config)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "prune even below the threshold")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output the summary in JSON format")

	return cmd
}

func runPrune(opts *PruneOptions) error {
	out, err := app.Prune(app.PruneOptions{
		ConfigPath:  opts.ConfigPath,
		HistoryPath: opts.HistoryPath,
		MaxLines:    opts.MaxLines,
		Force:       opts.Force,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	if out.Skipped {
		fmt.Printf("History below threshold (%d entries), nothing to prune\n", out.Before)
		return nil
	}

	fmt.Printf("Pruned %d -> %d entries (%s)\n", out.Before, out.After, out.Path)
	return nil
}
