package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	bherror "github.com/msto63/bhasha/foundation/core/error"
)

const (
	exprSourceName  = "<expr>"
	stdinSourceName = "<stdin>"
)

// loadInput returns the source named by the arguments: the -e expression,
// stdin for "-" or no argument, a file otherwise
func (a *app) loadInput(cmd *cobra.Command, args []string, expr string) (*token.Source, error) {
	if expr != "" {
		if len(args) > 0 {
			return nil, bherror.New("use either -e or a file argument").
				WithCode(bherror.CodeInvalidInput).
				WithOperation("cli.input")
		}
		return a.engine.Load(exprSourceName, expr)
	}
	if len(args) == 0 || args[0] == "-" {
		return a.engine.LoadReader(stdinSourceName, cmd.InOrStdin())
	}
	return a.engine.LoadFile(args[0])
}

// reportDiagnostic prints err as a caret report when it is a language
// diagnostic and converts it into exit status 1. Other errors pass through.
func (a *app) reportDiagnostic(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	derr, ok := bhasha.Diagnostic(err)
	if !ok {
		return err
	}
	a.logger.LogError(derr.CoreError())
	newPrinter(cmd.ErrOrStderr()).report(a.engine.Messages().Report(derr))
	return &exitError{code: derr.Kind.Code().ExitCode()}
}
