// Package bhasha is the front end of the Bhasha language, a small
// expression language whose keywords and numerals may be written in Latin
// script or in Devanagari (Marathi).
//
// The Engine ties the packages together:
//
//	engine, err := bhasha.New(bhasha.Options{Locale: "mr-en", Normalize: true})
//	if err != nil {
//		return err
//	}
//	node, err := engine.Parse("demo.bh", "जर x > १ तर x नाहीतर 0")
//	if err != nil {
//		fmt.Println(engine.Render(err))
//		return err
//	}
//	fmt.Println(ast.Sprint(node)) // (IF ((> x 1) x) (ELSE 0))
//
// The subpackages can also be used on their own: token for positions and
// the keyword table, script for digit translation, parser for the lexer and
// parser, ast for the tree and diag for diagnostics.
package bhasha
