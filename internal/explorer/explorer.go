// Package explorer implements the interactive syntax explorer: every input
// line is parsed, its tree or diagnostic shown, and the line stored in the
// persistent history.
package explorer

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/bhasha/foundation/bhasha"
	"github.com/msto63/bhasha/foundation/bhasha/ast"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
	"github.com/msto63/bhasha/internal/history"
)

// SourceName names explorer inputs in diagnostics
const SourceName = "<explorer>"

// Config contains everything the explorer needs
type Config struct {
	Engine *bhasha.Engine
	Store  history.Store

	// HistoryLimit is both the number of inputs recalled at start and the
	// number kept in the store on exit
	HistoryLimit int

	Logger *bhlog.Logger
}

// Result is the outcome of parsing one input
type Result struct {
	Source string
	OK     bool
	SExpr  string
	Tree   string
	Names  *ast.CollectorVisitor

	// Diagnostic is the rendered caret report of a rejected input
	Diagnostic string
}

// Summary is the text stored in the history for r
func (r Result) Summary() string {
	if r.OK {
		return r.SExpr
	}
	return r.Diagnostic
}

// Evaluate parses input with engine
func Evaluate(engine *bhasha.Engine, input string) Result {
	res := Result{Source: input}

	node, err := engine.Parse(SourceName, input)
	if err != nil {
		res.Diagnostic = engine.Render(err)
		return res
	}

	res.OK = true
	res.SExpr = ast.Sprint(node)
	res.Tree = strings.TrimRight(ast.TreeString(node), "\n")
	res.Names = ast.CollectNames(node)
	return res
}

// Run starts the explorer on the terminal and blocks until the user quits
// or ctx is cancelled. The history is pruned to HistoryLimit afterwards.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) error {
	m, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, runErr := tea.NewProgram(m, opts...).Run()

	if cfg.HistoryLimit > 0 {
		removed, err := cfg.Store.Prune(context.Background(), cfg.HistoryLimit)
		if err != nil {
			m.logger.LogError(err)
		} else if removed > 0 {
			m.logger.Debug("history pruned", bhlog.Fields{"removed": removed})
		}
	}

	if runErr != nil && ctx.Err() == nil {
		return bherror.Wrap(runErr, "explorer failed").
			WithCode(bherror.CodeInternal).
			WithOperation("explorer.run")
	}
	return nil
}
