package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/founder/internal/app"
)

// OutputFormat defines the output format for the list command.
type OutputFormat string

const (
	FormatPlain OutputFormat = "plain"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// ListOptions contains the options for the list command.
type ListOptions struct {
	ConfigPath  string
	HistoryPath string
	All         bool
	Limit       int
	NoTilde     bool
	Format      string
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List history entries, most recent first",
		Long: `List history entries, most recent first.

Duplicates are suppressed and paths under the home directory are shown
with a ~/ prefix. The default plain output is one path per line, which
pipes cleanly into fuzzy finders.

Examples:
  founder list                 # plain listing, newest first
  founder list --format table  # with existence column
  founder list --all           # keep duplicate entries
  founder list --limit 20      # at most 20 entries`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file path")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "history file path (default from config)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "keep duplicate entries")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of entries (0 = no limit)")
	cmd.Flags().BoolVar(&opts.NoTilde, "no-tilde", false, "print full paths without ~/ contraction")
	cmd.Flags().StringVar(&opts.Format, "format", "plain", "output format (plain, table, json)")

	return cmd
}

func runList(opts *ListOptions) error {
	out, err := app.List(app.ListOptions{
		ConfigPath:  opts.ConfigPath,
		HistoryPath: opts.HistoryPath,
		All:         opts.All,
		Limit:       opts.Limit,
		NoTilde:     opts.NoTilde,
	})
	if err != nil {
		return err
	}

	switch OutputFormat(opts.Format) {
	case FormatPlain:
		for _, entry := range out.Entries {
			fmt.Println(entry.Display)
		}
	case FormatTable:
		printListTable(out.Entries)
	case FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	default:
		return fmt.Errorf("invalid format: %s (must be plain, table, or json)", opts.Format)
	}

	return nil
}

// printListTable prints entries with an existence column.
func printListTable(entries []app.ListEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries in file history.")
		return
	}

	tbl := table.New("PATH", "EXISTS")
	for _, entry := range entries {
		exists := "yes"
		if !entry.Exists {
			exists = "no"
		}
		tbl.AddRow(entry.Display, exists)
	}
	tbl.Print()

	fmt.Printf("\nTotal: %d entr%s\n", len(entries), plural(len(entries), "y", "ies"))
}
