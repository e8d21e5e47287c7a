package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
	"github.com/chazuruo/founder/internal/config"
	"github.com/chazuruo/founder/internal/errors"
	"github.com/chazuruo/founder/internal/tui"
)

// PickOptions contains the options for the pick command.
type PickOptions struct {
	ConfigPath  string
	HistoryPath string
	NoRecord    bool
}

// NewPickCommand creates the pick command.
func NewPickCommand() *cobra.Command {
	opts := &PickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively select a path from the history",
		Long: `Interactively select a path from the history.

History entries are shown most recent first with duplicates suppressed.
The selection is printed to stdout and recorded back into the history,
so frequently picked files bubble up. With --no-tui the deduplicated
listing is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")
	cmd.Flags().BoolVar(&opts.NoRecord, "no-record", false, "do not record the selection back into the history")

	return cmd
}

func runPick(opts *PickOptions) error {
	cfg, err := loadPickConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	listing, err := app.List(app.ListOptions{
		ConfigPath:  opts.ConfigPath,
		HistoryPath: opts.HistoryPath,
		NoTilde:     true,
	})
	if err != nil {
		return err
	}

	if IsNoTUI() || !cfg.TUI.Enabled {
		// Plain fallback, pipeable into an external fuzzy finder.
		for _, entry := range listing.Entries {
			fmt.Println(entry.Path)
		}
		return nil
	}

	entries := make([]string, len(listing.Entries))
	for i, entry := range listing.Entries {
		entries[i] = entry.Path
	}

	selection, ok, err := tui.Pick(entries)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrCanceled
	}

	if !opts.NoRecord {
		if _, err := app.Add(app.AddOptions{
			ConfigPath:  opts.ConfigPath,
			HistoryPath: opts.HistoryPath,
			Path:        selection,
		}); err != nil {
			// The pick itself succeeded; a stale entry just isn't re-recorded.
			fmt.Fprintf(os.Stderr, "Warning: failed to record selection: %v\n", err)
		}

		maybePrune(opts)
	}

	fmt.Println(selection)
	return nil
}

// maybePrune prunes in passing once the history has grown past the
// threshold, the way the finder compacts opportunistically rather than
// on a schedule. Prune itself skips below the threshold; failures warn.
func maybePrune(opts *PickOptions) {
	if _, err := app.Prune(app.PruneOptions{
		ConfigPath:  opts.ConfigPath,
		HistoryPath: opts.HistoryPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to prune history: %v\n", err)
	}
}

// loadPickConfig loads the config, falling back to defaults.
func loadPickConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadWithDefaults()
}
