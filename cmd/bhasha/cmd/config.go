package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/utils/mapx"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, BHASHA_*
environment variables and command-line flags have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := a.cfg.Summary()
			summary["language.locale"] = a.engine.Messages().Locale()

			keys := mapx.SortedKeys(summary)
			width := 0
			for _, k := range keys {
				width = max(width, bhstringx.Width(k))
			}

			w := cmd.OutOrStdout()
			for _, k := range keys {
				fmt.Fprintf(w, "%s  %s\n", bhstringx.PadRight(k, width, ' '), summary[k])
			}
			return nil
		},
	}
}
