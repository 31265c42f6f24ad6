package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/bhasha/foundation/bhasha/script"
	"github.com/msto63/bhasha/foundation/bhasha/token"
	"github.com/msto63/bhasha/foundation/utils/slicex"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

type keywordRecord struct {
	Latin  string `json:"latin" yaml:"latin"`
	Native string `json:"native" yaml:"native"`
}

type digitRecord struct {
	Latin  string `json:"latin" yaml:"latin"`
	Native string `json:"native" yaml:"native"`
}

type keywordTable struct {
	Keywords []keywordRecord `json:"keywords" yaml:"keywords"`
	Digits   []digitRecord   `json:"digits" yaml:"digits"`
}

func buildKeywordTable() keywordTable {
	var table keywordTable
	for _, kw := range token.Keywords() {
		table.Keywords = append(table.Keywords, keywordRecord{Latin: kw.Latin(), Native: kw.Native()})
	}
	for r := '०'; r <= '९'; r++ {
		table.Digits = append(table.Digits, digitRecord{
			Latin:  string(script.DigitToLatin(r)),
			Native: string(r),
		})
	}
	return table
}

func newKeywordsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the bilingual keyword and digit table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := buildKeywordTable()
			w := cmd.OutOrStdout()

			if output != "" && output != "text" {
				return encode(w, output, table)
			}

			for _, kw := range table.Keywords {
				fmt.Fprintln(w, bhstringx.PadRight(kw.Latin, 8, ' ')+kw.Native)
			}
			fmt.Fprintln(w)

			latin := slicex.Map(table.Digits, func(d digitRecord) string { return d.Latin })
			native := slicex.Map(table.Digits, func(d digitRecord) string { return d.Native })
			fmt.Fprintln(w, strings.Join(latin, " "))
			fmt.Fprintln(w, strings.Join(native, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json or yaml")
	return cmd
}
