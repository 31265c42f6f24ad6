// Package ast defines the syntax tree of the Bhasha language.
//
// The node set is closed: NumberLiteral, StringLiteral, VariableAccess,
// VariableAssign, BinaryOp, UnaryOp, Conditional, CountedLoop,
// ConditionalLoop, FunctionDefinition and Call. Code that handles every
// variant uses a type switch or implements Visitor.
//
// Trees are read-only once the parser returns them. Equal compares two
// trees ignoring positions and keyword script, Sprint prints an
// s-expression, TreeString an indented outline and ToMap a generic form for
// JSON and YAML.
package ast
