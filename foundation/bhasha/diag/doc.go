// Package diag holds the diagnostics of the Bhasha lexer and parser.
//
// A diagnostic is an *Error with a Kind, an exact [start, end) span and a
// message rendered from an embedded catalog:
//
//	msgs, _ := diag.NewMessages("mr-en")
//	err := msgs.New(diag.InvalidSyntax, tok.Start, tok.End, "parse.expected_rparen", nil)
//	fmt.Println(msgs.Render(err))
//
// Render prints the classic report with the source line underlined:
//
//	Invalid Syntax: Expected ')'
//	File a.bh, line 1
//
//	(1 + 2
//	      ^
package diag
