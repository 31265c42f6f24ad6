package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha"
	"github.com/msto63/bhasha/foundation/bhasha/diag"
	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
	"github.com/msto63/bhasha/foundation/utils/filex"
	"github.com/msto63/bhasha/foundation/utils/slicex"
	"github.com/msto63/bhasha/pkg/core/cache"
)

// SourceExtension is the file extension of Bhasha sources found in directories
const SourceExtension = ".bh"

// checkResult is the outcome of checking one file
type checkResult struct {
	File   string `json:"file" yaml:"file"`
	OK     bool   `json:"ok" yaml:"ok"`
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	report *diag.Report
}

func newCheckCmd(a *app) *cobra.Command {
	var output string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Check sources and report diagnostics",
		Long: `Parse every given file, and every ` + SourceExtension + ` file below the given
directories, and print a caret diagnostic for each rejected source.
The exit status is 1 when a source has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := filex.SourceFiles(args, SourceExtension)
			if err != nil {
				return err
			}
			results := a.checkFiles(files)

			if output == "" || output == "text" {
				a.printResults(cmd.OutOrStdout(), results, quiet)
			} else if err := encode(cmd.OutOrStdout(), output, results); err != nil {
				return err
			}
			return checkStatus(results)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only failures")
	return cmd
}

func (a *app) checkFiles(files []string) []checkResult {
	results := make([]checkResult, 0, len(files))
	for _, f := range files {
		results = append(results, a.checkFile(f))
	}
	return results
}

// checkFile parses one file. Results are cached by name and content, so
// watch only parses files whose content changed.
func (a *app) checkFile(path string) checkResult {
	src, err := a.engine.LoadFile(path)
	if err != nil {
		return a.failedResult(path, err)
	}

	key := cache.Key(src.Name, string(src.Text))
	if res, ok := a.results.Get(key); ok {
		a.logger.Debug("check result reused", bhlog.Fields{"file": path})
		return res
	}

	res := checkResult{File: path, OK: true}
	if _, err := a.engine.ParseSource(src); err != nil {
		res = a.failedResult(path, err)
	}
	a.results.Set(key, res)
	return res
}

func (a *app) failedResult(path string, err error) checkResult {
	coded := bhasha.Coded(err)
	res := checkResult{
		File:  path,
		Code:  coded.Code().String(),
		Error: err.Error(),
	}
	if derr, ok := bhasha.Diagnostic(err); ok {
		res.Line = derr.Start.Line + 1
		res.Column = derr.Start.Column + 1
		res.Error = derr.Title + ": " + derr.Detail
		report := a.engine.Messages().Report(derr)
		res.report = &report
	}
	a.logger.LogError(coded)
	return res
}

func (a *app) printResults(w io.Writer, results []checkResult, quiet bool) {
	p := newPrinter(w)
	msgs := a.engine.Messages()

	for _, r := range results {
		switch {
		case r.OK:
			if !quiet {
				p.success(msgs.T("summary.ok", map[string]interface{}{"File": r.File}))
			}
		case r.report != nil:
			p.report(*r.report)
			io.WriteString(w, "\n")
		default:
			p.failure(r.File + ": " + r.Error)
		}
	}

	failed := slicex.Count(results, func(r checkResult) bool { return !r.OK })

	if failed > 0 {
		p.failure(msgs.Plural("summary.errors", failed, nil))
	}
}

// checkStatus maps results to the exit status: 0 when all passed, the
// status of the first non-language failure if any, 1 otherwise
func checkStatus(results []checkResult) error {
	status := 0
	for _, r := range results {
		if r.OK {
			continue
		}
		code := bherror.Code(r.Code)
		if !code.IsLanguage() {
			return &exitError{code: code.ExitCode()}
		}
		status = 1
	}
	if status == 0 {
		return nil
	}
	return &exitError{code: status}
}
