package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
)

// AddOptions contains the options for the add command.
type AddOptions struct {
	ConfigPath  string
	HistoryPath string
}

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	opts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Record a file path in the history",
		Long: `Record a file path in the history.

The path is canonicalized (made absolute, symlinks resolved) before it
is appended, so later existence checks and duplicate detection see one
spelling per file. Recording a path that does not exist is an error.`,
		Example: `  # Record a file that was just opened
  founder add ./notes/today.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Add(app.AddOptions{
				ConfigPath:  opts.ConfigPath,
				HistoryPath: opts.HistoryPath,
				Path:        args[0],
			})
			return err
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")

	return cmd
}
