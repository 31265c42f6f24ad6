package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/internal/explorer"
	"github.com/msto63/bhasha/internal/history"
)

func newExploreCmd(a *app) *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:     "explore",
		Aliases: []string{"repl"},
		Short:   "Start the interactive syntax explorer",
		Long: `Start the interactive syntax explorer. Every entered line is parsed and
shown as s-expression or tree together with the names it assigns and
reads. Inputs are kept in a SQLite history (explorer.history_path) and
can be recalled with the arrow keys in later sessions.

Keys:
  Enter     - Parse the input line
  Up/Down   - Recall earlier inputs
  Tab       - Switch between s-expression and tree
  Ctrl+L    - Clear the transcript
  Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var store history.Store
			if noHistory {
				store = history.NewMemoryStore()
			} else {
				sqlite, err := history.Open(a.cfg.Explorer.HistoryPath)
				if err != nil {
					return err
				}
				store = sqlite
			}
			defer store.Close()

			return explorer.Run(cmd.Context(), explorer.Config{
				Engine:       a.engine,
				Store:        store,
				HistoryLimit: a.cfg.Explorer.HistoryLimit,
				Logger:       a.logger,
			})
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "keep the history in memory only")
	return cmd
}
