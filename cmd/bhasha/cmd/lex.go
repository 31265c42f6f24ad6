package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha/token"
	"github.com/msto63/bhasha/foundation/utils/slicex"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

// tokenRecord is the exported form of a token
type tokenRecord struct {
	Kind    string      `json:"kind" yaml:"kind"`
	Value   interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	Keyword string      `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Lexeme  string      `json:"lexeme" yaml:"lexeme"`
	Span    [2]int      `json:"span" yaml:"span,flow"`
	Line    int         `json:"line" yaml:"line"`
	Column  int         `json:"column" yaml:"column"`
}

func newTokenRecord(t token.Token) tokenRecord {
	rec := tokenRecord{
		Kind:   t.Kind.String(),
		Value:  t.Value,
		Lexeme: t.Lexeme(),
		Span:   [2]int{t.Start.Index, t.End.Index},
		Line:   t.Start.Line + 1,
		Column: t.Start.Column + 1,
	}
	if t.Kind == token.KEYWORD {
		rec.Keyword = t.Keyword.Latin()
	}
	return rec
}

func newLexCmd(a *app) *cobra.Command {
	var expr, output string

	cmd := &cobra.Command{
		Use:   "lex [file|-]",
		Short: "Print the tokens of a source",
		Long: `Print the tokens of a source file, of stdin ("-" or no argument) or of
an expression given with -e.`,
		Example: `  bhasha lex -e 'चल x = ४२'
  bhasha lex --output json prog.bh`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = "text"
				if f := a.cfg.Output.Format; f == "json" || f == "yaml" {
					output = f
				}
			}
			src, err := a.loadInput(cmd, args, expr)
			if err != nil {
				return err
			}
			tokens, err := a.engine.TokenizeSource(src)
			if err != nil {
				return a.reportDiagnostic(cmd, err)
			}
			return writeTokens(cmd.OutOrStdout(), output, tokens)
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "source text to lex instead of a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	return cmd
}

func writeTokens(w io.Writer, format string, tokens []token.Token) error {
	if format != "text" {
		return encode(w, format, slicex.Map(tokens, newTokenRecord))
	}

	for _, t := range tokens {
		pos := fmt.Sprintf("%d:%d", t.Start.Line+1, t.Start.Column+1)
		line := bhstringx.PadRight(pos, 7, ' ') + bhstringx.PadRight(t.Kind.String(), 11, ' ') + t.Describe()
		if t.Kind == token.KEYWORD {
			line += " (" + t.Keyword.Latin() + ")"
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
