package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/msto63/bhasha/foundation/bhasha/diag"
	bherror "github.com/msto63/bhasha/foundation/core/error"
)

// printer writes colored diagnostics. Colors follow color.NoColor, which
// setup derives from the output.color setting.
type printer struct {
	w        io.Writer
	header   *color.Color
	location *color.Color
	caret    *color.Color
	ok       *color.Color
	muted    *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:        w,
		header:   color.New(color.FgRed, color.Bold),
		location: color.New(color.FgCyan),
		caret:    color.New(color.FgYellow, color.Bold),
		ok:       color.New(color.FgGreen),
		muted:    color.New(color.Faint),
	}
}

func (p *printer) report(r diag.Report) {
	fmt.Fprintln(p.w, p.header.Sprint(r.Header))
	fmt.Fprintln(p.w, p.location.Sprint(r.Location))
	for i, line := range r.Lines {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, line)
		fmt.Fprintln(p.w, p.caret.Sprint(r.Carets[i]))
	}
}

func (p *printer) success(msg string) {
	fmt.Fprintln(p.w, p.ok.Sprint(msg))
}

func (p *printer) failure(msg string) {
	fmt.Fprintln(p.w, p.header.Sprint(msg))
}

func (p *printer) note(msg string) {
	fmt.Fprintln(p.w, p.muted.Sprint(msg))
}

// encode writes v as JSON or YAML
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return unsupportedFormat(format)
	}
}

func unsupportedFormat(format string) error {
	return bherror.Newf("unsupported output format: %s", format).
		WithCode(bherror.CodeInvalidInput).
		WithOperation("cli.output")
}
