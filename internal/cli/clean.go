// Package cli provides Cobra command definitions for founder.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
)

// CleanOptions contains the options for the clean command.
type CleanOptions struct {
	ConfigPath  string
	HistoryPath string
	Verbose     bool
	JSON        bool
}

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	opts := &CleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove history entries whose files no longer exist",
		Long: `Compact the file history, keeping only entries whose paths still
exist on the filesystem.

Each line of the history file is trimmed and checked against the
filesystem; entries that no longer resolve are dropped. Surviving
entries keep their original order, duplicates included. The file is
replaced atomically, so an interrupted run never leaves a truncated
history behind.`,
		Example: `  # Compact the default history file
  founder clean

  # Compact a specific history file
  founder clean --history /tmp/file_history

  # Show what happened
  founder clean --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print a summary after cleaning")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output the summary in JSON format")

	return cmd
}

func runClean(opts *CleanOptions) error {
	out, err := app.Clean(app.CleanOptions{
		ConfigPath:  opts.ConfigPath,
		HistoryPath: opts.HistoryPath,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	// Silent on success unless asked otherwise.
	if opts.Verbose {
		fmt.Printf("Kept %d entr%s, dropped %d (%s)\n",
			out.Kept, plural(out.Kept, "y", "ies"), out.Dropped, out.Path)
	}

	return nil
}

// plural picks a suffix based on count.
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
