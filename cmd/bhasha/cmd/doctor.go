package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha/ast"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
	"github.com/msto63/bhasha/internal/history"
	"github.com/msto63/bhasha/pkg/core/health"
	"github.com/msto63/bhasha/pkg/core/version"
)

// scriptPairs are sources that must parse to the same tree in both scripts
var scriptPairs = [][2]string{
	{"var x = 1 + 2 * 3", "चल x = १ + २ * ३"},
	{"IF a AND NOT b THEN 1 ELIF c THEN 2 ELSE 3", "जर a आणि नाही b तर १ किंवाजर c तर २ नाहीतर ३"},
	{"FOR i = 0 TO 10 STEP 2 THEN i", "वारंवार i = ० ते १० पाऊल २ तर i"},
	{"WHILE x > 0 THEN var x = x - 1", "जोपर्यंत x > ० तर चल x = x - १"},
	{"FUN sq(a) -> a ** 2", "कार्य sq(a) -> a ** २"},
}

func newDoctorCmd(a *app) *cobra.Command {
	var output string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check catalogs, grammar and history storage",
		Long: `Run self checks: every message catalog renders all diagnostic titles,
Latin and Devanagari sources parse to the same trees, and the explorer
history database can be opened. A history failure only degrades the
result because the explorer can run with --no-history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := a.doctorChecks()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			report := registry.Check(ctx)
			a.logger.Debug("doctor finished", bhlog.Fields{"status": string(report.Status)})

			w := cmd.OutOrStdout()
			if output != "" && output != "text" {
				if err := encode(w, output, report); err != nil {
					return err
				}
			} else {
				printHealth(newPrinter(w), report)
			}

			if !report.Healthy() {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "time limit for all checks")
	return cmd
}

func (a *app) doctorChecks() *health.Registry {
	registry := health.NewRegistry("bhasha", version.Toolchain)
	registry.RegisterFunc("catalog", checkCatalogs)
	registry.RegisterFunc("keywords", a.checkKeywords)
	registry.RegisterFunc("grammar", a.checkScripts)
	registry.RegisterFunc("history", a.checkHistory)
	return registry
}

func checkCatalogs(ctx context.Context) health.CheckResult {
	locales := diag.Locales()
	if len(locales) == 0 {
		return health.Result("catalog", bherror.New("no locales available"), health.StatusUnhealthy)
	}

	kinds := []diag.Kind{diag.IllegalCharacter, diag.ExpectedChar, diag.InvalidSyntax, diag.NumberRange}
	for _, locale := range locales {
		msgs, err := diag.NewMessages(locale)
		if err != nil {
			return health.Result("catalog", err, health.StatusUnhealthy)
		}
		for _, k := range kinds {
			if title := msgs.Title(k); strings.HasPrefix(title, "[") {
				err := bherror.Newf("locale %s has no title for %s", locale, k)
				return health.Result("catalog", err, health.StatusUnhealthy)
			}
		}
	}

	res := health.Result("catalog", nil, health.StatusUnhealthy)
	res.Details = map[string]interface{}{"locales": strings.Join(locales, ", ")}
	return res
}

func (a *app) checkKeywords(ctx context.Context) health.CheckResult {
	for _, kw := range token.Keywords() {
		for _, spelling := range []string{kw.Latin(), kw.Native()} {
			toks, err := a.engine.Tokenize("<doctor>", spelling)
			if err != nil {
				return health.Result("keywords", err, health.StatusUnhealthy)
			}
			if toks[0].Kind != token.KEYWORD || toks[0].Keyword != kw {
				err := bherror.Newf("%q does not lex as keyword %s", spelling, kw.Latin())
				return health.Result("keywords", err, health.StatusUnhealthy)
			}
		}
	}
	res := health.Result("keywords", nil, health.StatusUnhealthy)
	res.Details = map[string]interface{}{"keywords": len(token.Keywords())}
	return res
}

func (a *app) checkScripts(ctx context.Context) health.CheckResult {
	for _, pair := range scriptPairs {
		if err := ctx.Err(); err != nil {
			return health.Result("grammar", err, health.StatusUnknown)
		}

		latin, err := a.engine.Parse("<latin>", pair[0])
		if err != nil {
			return health.Result("grammar", err, health.StatusUnhealthy)
		}
		native, err := a.engine.Parse("<devanagari>", pair[1])
		if err != nil {
			return health.Result("grammar", err, health.StatusUnhealthy)
		}
		if l, n := ast.Sprint(latin), ast.Sprint(native); l != n {
			err := bherror.Newf("scripts disagree: %s vs %s", l, n)
			return health.Result("grammar", err, health.StatusUnhealthy)
		}
	}
	res := health.Result("grammar", nil, health.StatusUnhealthy)
	res.Details = map[string]interface{}{"pairs": len(scriptPairs)}
	return res
}

func (a *app) checkHistory(ctx context.Context) health.CheckResult {
	path := a.cfg.Explorer.HistoryPath
	store, err := history.Open(path)
	if err != nil {
		return health.Result("history", err, health.StatusDegraded)
	}
	defer store.Close()

	stats, err := store.Statistics(ctx)
	if err != nil {
		return health.Result("history", err, health.StatusDegraded)
	}
	res := health.Result("history", nil, health.StatusDegraded)
	res.Details = stats
	res.Details["path"] = path
	return res
}

func printHealth(p *printer, report *health.Report) {
	for _, c := range report.Checks {
		line := bhstringx.PadRight(c.Name, 10, ' ') + bhstringx.PadRight(string(c.Status), 11, ' ') + c.Message
		switch c.Status {
		case health.StatusHealthy:
			p.success(line)
		case health.StatusDegraded:
			p.note(line)
		default:
			p.failure(line)
		}
	}
	fmt.Fprintf(p.w, "%s %s: %s\n", report.Tool, report.Version, report.Status)
}
