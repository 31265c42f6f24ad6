// File: render.go
// Title: Caret Diagnostics
// Description: Renders a diagnostic as a header, a location line and the
//              affected source lines underlined with carets. Caret columns are
//              measured in terminal cells so Devanagari text lines up.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package diag

import (
	"strings"

	"github.com/mattn/go-runewidth"

	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

// Report is a rendered diagnostic split into parts that callers may style
// separately
type Report struct {
	Header   string
	Location string

	// Lines and Carets are parallel, one entry per affected source line
	Lines  []string
	Carets []string
}

// String joins the report into its plain text form
func (r Report) String() string {
	var b strings.Builder
	b.WriteString(r.Header)
	b.WriteString("\n")
	b.WriteString(r.Location)
	if len(r.Lines) > 0 {
		b.WriteString("\n")
	}
	for i, line := range r.Lines {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(r.Carets[i])
	}
	return b.String()
}

// Render formats err with the default messages
func Render(err *Error) string {
	return DefaultMessages().Render(err)
}

// Render formats err in this locale
func (m *Messages) Render(err *Error) string {
	return m.Report(err).String()
}

// Report builds the report parts for err
func (m *Messages) Report(err *Error) Report {
	err = m.Localize(err)

	report := Report{
		Header: err.Title + ": " + err.Detail,
		Location: m.T("render.location", map[string]interface{}{
			"File": err.Start.Filename(),
			"Line": err.Start.Line + 1,
		}),
	}

	src := err.Start.Src
	if src == nil {
		return report
	}

	endLine := err.End.Line
	if endLine < err.Start.Line {
		endLine = err.Start.Line
	}
	// An end at column 0 covers nothing on its line
	if endLine > err.Start.Line && err.End.Column == 0 {
		endLine--
	}

	for n := err.Start.Line; n <= endLine; n++ {
		line := []rune(src.Line(n))

		from := 0
		if n == err.Start.Line {
			from = clamp(err.Start.Column, 0, len(line))
		}
		to := len(line)
		if n == err.End.Line {
			to = clamp(err.End.Column, from, len(line))
		}

		report.Lines = append(report.Lines, string(line))
		report.Carets = append(report.Carets, caretRow(line, from, to))
	}

	return report
}

func caretRow(line []rune, from, to int) string {
	indent := bhstringx.Width(string(line[:from]))
	width := runewidth.StringWidth(string(line[from:to]))
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", indent) + strings.Repeat("^", width)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
