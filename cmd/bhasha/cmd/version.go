package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			w := cmd.OutOrStdout()

			if output != "" && output != "text" {
				return encode(w, output, info)
			}

			fmt.Fprintf(w, "bhasha v%s\n", info.Toolchain)
			fmt.Fprintf(w, "  Language:   %s\n", info.Language)
			fmt.Fprintf(w, "  Catalog:    %s\n", info.Catalog)
			fmt.Fprintf(w, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	return cmd
}
