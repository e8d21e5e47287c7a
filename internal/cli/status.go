package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
)

// StatusOptions contains the options for the status command.
type StatusOptions struct {
	ConfigPath  string
	HistoryPath string
	JSON        bool
}

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	opts := &StatusOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the history file",
		Long: `Summarize the history file: entry counts, how many paths are
still live, file size, and whether pruning is due.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output in JSON format")

	return cmd
}

func runStatus(opts *StatusOptions) error {
	out, err := app.Status(app.StatusOptions{
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

	if !out.FileExists {
		fmt.Printf("History file: %s (not created yet)\n", out.Path)
		return nil
	}

	tbl := table.New("FIELD", "VALUE")
	tbl.AddRow("path", out.Path)
	tbl.AddRow("size", fmt.Sprintf("%d B", out.SizeBytes))
	tbl.AddRow("entries", fmt.Sprintf("%d", out.Entries))
	tbl.AddRow("unique", fmt.Sprintf("%d", out.Unique))
	tbl.AddRow("live", fmt.Sprintf("%d", out.Live))
	tbl.AddRow("dead", fmt.Sprintf("%d", out.Dead))
	tbl.AddRow("max lines", fmt.Sprintf("%d", out.MaxLines))
	tbl.Print()

	if out.NeedsPrune {
		fmt.Println("\nHistory has reached the prune threshold; run 'founder prune'.")
	}
	if out.Dead > 0 {
		fmt.Printf("\n%d entr%s point at missing files; run 'founder clean'.\n",
			out.Dead, plural(out.Dead, "y", "ies"))
	}

	return nil
}
