package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha/ast"
)

func newParseCmd(a *app) *cobra.Command {
	var expr, output string

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the syntax tree of a source",
		Long: `Parse a source file, stdin ("-" or no argument) or an expression given
with -e and print its syntax tree. Output formats:

  sexpr  - one-line s-expression, e.g. (+ 1 (* 2 3))
  tree   - indented node listing with positions
  json   - node maps with spans
  yaml   - the same as YAML`,
		Example: `  bhasha parse -e 'जर x > ० तर x नाहीतर ०'
  bhasha parse --output tree prog.bh`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = a.cfg.Output.Format
			}
			src, err := a.loadInput(cmd, args, expr)
			if err != nil {
				return err
			}
			node, err := a.engine.ParseSource(src)
			if err != nil {
				return a.reportDiagnostic(cmd, err)
			}

			w := cmd.OutOrStdout()
			switch output {
			case "sexpr", "text":
				fmt.Fprintln(w, ast.Sprint(node))
				return nil
			case "tree":
				fmt.Fprint(w, ast.TreeString(node))
				return nil
			default:
				return encode(w, output, ast.ToMap(node))
			}
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "source text to parse instead of a file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: sexpr, tree, json or yaml (default from config)")
	return cmd
}
