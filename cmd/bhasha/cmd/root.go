// ============================================================================
// Bhasha - Bilingual expression language toolchain
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared run state of the CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
	"github.com/msto63/bhasha/pkg/core/cache"
	"github.com/msto63/bhasha/pkg/core/config"
	"github.com/msto63/bhasha/pkg/core/logging"
)

// app is the state shared by all commands of one run
type app struct {
	cfgFile string
	verbose bool
	locale  string

	cfg     *config.Config
	logger  *bhlog.Logger
	engine  *bhasha.Engine
	runID   string
	restore func()

	results *cache.Cache[checkResult]
}

// exitError carries an exit status for failures that were already reported
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bhasha",
		Short: "Bhasha - bilingual expression language toolchain",
		Long: `Bhasha lexes and parses a small expression language whose keywords and
digits can be written in Latin script or in Devanagari (Marathi):

  var x = 1 + 2          चल x = १ + २
  IF x > 2 THEN x        जर x > २ तर x

Commands:
  lex       - Token listing of a source
  parse     - Syntax tree of a source
  check     - Check sources and report diagnostics
  watch     - Re-check sources whenever they are saved
  explore   - Interactive syntax explorer with history
  keywords  - Bilingual keyword and digit table
  doctor    - Self checks of catalogs, grammar and history`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $BHASHA_CONFIG, ./bhasha.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose log output")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "message locale: en, mr or mr-en")

	root.AddCommand(
		newLexCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
		newExploreCmd(a),
		newKeywordsCmd(a),
		newConfigCmd(a),
		newDoctorCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and builds logger and engine
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.locale != "" {
		a.cfg.Language.Locale = a.locale
	}

	switch a.cfg.Output.Color {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	}

	a.runID = uuid.NewString()
	lc := logging.FromConfig(a.cfg, a.verbose, a.runID)
	lc.Output = cmd.ErrOrStderr()
	a.logger, a.restore = logging.Setup(lc)

	a.engine, err = bhasha.New(bhasha.Options{
		Logger:         a.logger,
		Locale:         a.cfg.Language.Locale,
		Normalize:      a.cfg.NormalizeInput(),
		MaxInputLength: a.cfg.Language.MaxInputLength,
	})
	if err != nil {
		return err
	}
	a.results = cache.New[checkResult](cache.DefaultConfig())

	a.logger.Debug("command started", bhlog.Fields{"command": cmd.CommandPath(), "args": len(args)})
	return nil
}

func (a *app) teardown() {
	if a.restore != nil {
		a.restore()
		a.restore = nil
	}
}

// Execute runs the CLI and returns the process exit status
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	prevLogger, prevNoColor := bhlog.GetDefault(), color.NoColor
	defer func() {
		bhlog.SetDefault(prevLogger)
		color.NoColor = prevNoColor
	}()

	err := root.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	printError(stderr, err)
	if code := bherror.GetCode(err); code != "" && code != bherror.CodeUnknown {
		return code.ExitCode()
	}
	return 2
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
}
