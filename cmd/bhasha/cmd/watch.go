package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/utils/filex"
	"github.com/msto63/bhasha/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file|dir>...",
		Short: "Re-check sources whenever they are saved",
		Long: `Check the given sources once and then again after every save until
interrupted. Directories contribute the ` + SourceExtension + ` files they contain when
the command starts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := filex.SourceFiles(args, SourceExtension)
			if err != nil {
				return err
			}

			w, err := watcher.New(watcher.Config{
				Files:    files,
				Debounce: a.cfg.Watch.Debounce.Duration,
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}
			defer func() { _ = w.Stop() }()

			out := cmd.OutOrStdout()
			msgs := a.engine.Messages()
			p := newPrinter(out)

			a.printResults(out, a.checkFiles(files), false)
			p.note(msgs.T("watch.watching", map[string]interface{}{"Count": len(files)}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return w.Watch(ctx, func(changed []string) {
				for _, f := range changed {
					p.note(msgs.T("watch.changed", map[string]interface{}{"File": f}))
				}
				a.printResults(out, a.checkFiles(changed), false)
			})
		},
	}
}
