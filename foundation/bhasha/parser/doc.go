// Package parser implements the Bhasha lexer and recursive descent parser.
//
// The lexer turns a token.Source into tokens, translating Devanagari digits
// and classifying keywords in either script. The parser builds an ast.Node
// from the tokens. Both stop at the first error, which is a *diag.Error with
// an exact source span:
//
//	src := token.NewSource("demo.bh", "चल x = १ + 2 * 3")
//	node, err := parser.Parse(src, parser.Options{})
//	if err != nil {
//		var derr *diag.Error
//		if errors.As(err, &derr) {
//			fmt.Println(diag.Render(derr))
//		}
//		return
//	}
//	fmt.Println(ast.Sprint(node)) // (var x (+ 1 (* 2 3)))
//
// Each production returns a *Result. When an alternative fails, the error of
// the production that consumed tokens is kept, so messages point at the
// deepest position the parse reached.
//
// A Lexer or Parser serves one source and is not safe for concurrent use.
package parser
