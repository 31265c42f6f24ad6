// File: ast_test.go
// Title: Bhasha AST Tests
// Description: Tests for node spans, traversal, printing, comparison and
//              export. Trees are built by hand so the tests do not depend on
//              the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package ast

import (
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/bhasha/foundation/bhasha/token"
)

func num(v int64) *NumberLiteral {
	return &NumberLiteral{Tok: token.Token{Kind: token.INT, Value: v}}
}

func flt(v float64) *NumberLiteral {
	return &NumberLiteral{Tok: token.Token{Kind: token.FLOAT, Value: v}}
}

func str(s string) *StringLiteral {
	return &StringLiteral{Tok: token.Token{Kind: token.STRING, Value: s}}
}

func ident(name string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Value: name}
}

func ref(name string) *VariableAccess {
	return &VariableAccess{Name: ident(name)}
}

func op(kind token.Kind) token.Token {
	return token.Token{Kind: kind}
}

func kw(k token.Keyword, script token.Script) token.Token {
	return token.NewKeyword(k, k.Spelling(script), token.Position{}, token.Position{})
}

func bin(left Node, o token.Token, right Node) *BinaryOp {
	return &BinaryOp{Left: left, Op: o, Right: right}
}

// sample builds one tree using every variant, with keywords in script
func sample(script token.Script) Node {
	fname := ident("add")
	return &Call{
		Callee: &FunctionDefinition{
			Name:   &fname,
			Params: []token.Token{ident("a"), ident("b")},
			Body: &Conditional{
				Cases: []Case{
					{Cond: bin(ref("a"), kw(token.And, script), &UnaryOp{Op: kw(token.Not, script), Operand: ref("b")}), Body: num(1)},
					{Cond: bin(ref("a"), op(token.LTE), flt(2.5)), Body: str("x")},
				},
				Else: &CountedLoop{
					Var:  ident("i"),
					From: num(1),
					To:   num(10),
					Body: &ConditionalLoop{
						Cond: bin(ref("i"), op(token.NE), num(0)),
						Body: &VariableAssign{Name: ident("j"), Value: &UnaryOp{Op: op(token.MINUS), Operand: ref("i")}},
					},
				},
			},
		},
		Args: []Node{num(2), bin(num(3), op(token.POWER), num(4))},
	}
}

func TestSprint(t *testing.T) {
	fname := ident("f")
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"int", num(42), "42"},
		{"float", flt(3.25), "3.25"},
		{"whole float", flt(2), "2.0"},
		{"string", str("a\"b\n"), `"a\"b\n"`},
		{"binary", bin(num(1), op(token.PLUS), bin(num(2), op(token.MUL), num(3))), "(+ 1 (* 2 3))"},
		{"keyword operator", bin(num(1), kw(token.Or, token.Devanagari), num(0)), "(OR 1 0)"},
		{"unary", &UnaryOp{Op: op(token.MINUS), Operand: num(5)}, "(- 5)"},
		{"assign", &VariableAssign{Name: ident("x"), Value: num(1)}, "(var x 1)"},
		{"if without else", &Conditional{Cases: []Case{{Cond: ref("c"), Body: num(1)}}}, "(IF (c 1))"},
		{"for with step", &CountedLoop{Var: ident("i"), From: num(1), To: num(9), Step: num(2), Body: ref("i")},
			"(FOR i 1 9 (STEP 2) i)"},
		{"while", &ConditionalLoop{Cond: ref("c"), Body: num(0)}, "(WHILE c 0)"},
		{"named fun", &FunctionDefinition{Name: &fname, Params: []token.Token{ident("a")}, Body: ref("a")}, "(FUN f (a) a)"},
		{"anonymous fun", &FunctionDefinition{Body: num(1)}, "(FUN () 1)"},
		{"call", &Call{Callee: ref("f"), Args: []Node{num(1), num(2)}}, "(call f 1 2)"},
		{"call no args", &Call{Callee: num(3)}, "(call 3)"},
		{"nil", nil, "<nil>"},
		{
			"every variant",
			sample(token.Latin),
			"(call (FUN add (a b) (IF ((AND a (NOT b)) 1) ((<= a 2.5) \"x\") (ELSE (FOR i 1 10 (WHILE (!= i 0) (var j (- i))))))) 2 (** 3 4))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.node); got != tt.want {
				t.Errorf("Sprint() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(sample(token.Latin), sample(token.Devanagari)) {
		t.Error("trees differing only in keyword script should be equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil trees should be equal")
	}

	src := token.NewSource("t.bh", "1 + 1")
	positioned := bin(
		&NumberLiteral{Tok: token.New(token.INT, int64(1), token.At(src, 0))},
		token.New(token.PLUS, nil, token.At(src, 2)),
		&NumberLiteral{Tok: token.New(token.INT, int64(1), token.At(src, 4))},
	)
	if !Equal(positioned, bin(num(1), op(token.PLUS), num(1))) {
		t.Error("positions should be ignored")
	}

	fname := ident("f")
	other := ident("g")
	different := []struct {
		name string
		a, b Node
	}{
		{"nil vs node", nil, num(1)},
		{"int vs float", num(1), flt(1)},
		{"values", num(1), num(2)},
		{"variants", ref("x"), str("x")},
		{"operators", bin(num(1), op(token.PLUS), num(2)), bin(num(1), op(token.MINUS), num(2))},
		{"keywords", bin(num(1), kw(token.And, token.Latin), num(2)), bin(num(1), kw(token.Or, token.Latin), num(2))},
		{"else", &Conditional{Cases: []Case{{ref("c"), num(1)}}}, &Conditional{Cases: []Case{{ref("c"), num(1)}}, Else: num(2)}},
		{"step", &CountedLoop{Var: ident("i"), From: num(1), To: num(2), Body: num(0)},
			&CountedLoop{Var: ident("i"), From: num(1), To: num(2), Step: num(1), Body: num(0)}},
		{"name", &FunctionDefinition{Name: &fname, Body: num(1)}, &FunctionDefinition{Name: &other, Body: num(1)}},
		{"anonymous", &FunctionDefinition{Name: &fname, Body: num(1)}, &FunctionDefinition{Body: num(1)}},
		{"params", &FunctionDefinition{Params: []token.Token{ident("a")}, Body: num(1)}, &FunctionDefinition{Body: num(1)}},
		{"args", &Call{Callee: ref("f"), Args: []Node{num(1)}}, &Call{Callee: ref("f"), Args: []Node{num(2)}}},
	}
	for _, tt := range different {
		if Equal(tt.a, tt.b) || Equal(tt.b, tt.a) {
			t.Errorf("%s: trees should differ", tt.name)
		}
	}
}

func TestSpans(t *testing.T) {
	// IF c THEN 1 ELSE 22
	src := token.NewSource("t.bh", "IF c THEN 1 ELSE 22")
	cond := &VariableAccess{Name: token.NewSpan(token.IDENTIFIER, "c", token.At(src, 3), token.At(src, 4))}
	one := &NumberLiteral{Tok: token.New(token.INT, int64(1), token.At(src, 10))}
	elseNode := &NumberLiteral{Tok: token.NewSpan(token.INT, int64(22), token.At(src, 17), token.At(src, 19))}

	withElse := &Conditional{Cases: []Case{{cond, one}}, Else: elseNode}
	if withElse.Start().Index != 3 || withElse.End().Index != 19 {
		t.Errorf("conditional span = [%d, %d)", withElse.Start().Index, withElse.End().Index)
	}

	noElse := &Conditional{Cases: []Case{{cond, one}}}
	if noElse.End().Index != 11 {
		t.Errorf("conditional without else ends at %d", noElse.End().Index)
	}

	call := &Call{Callee: cond}
	if call.Start().Index != 3 || call.End().Index != 4 {
		t.Errorf("call without args span = [%d, %d)", call.Start().Index, call.End().Index)
	}
	call.Args = []Node{elseNode}
	if call.End().Index != 19 {
		t.Errorf("call end = %d", call.End().Index)
	}

	anon := &FunctionDefinition{Body: one}
	if anon.Start().Index != 10 || !anon.IsAnonymous() {
		t.Errorf("anonymous function starts at %d", anon.Start().Index)
	}
	anon.Params = []token.Token{cond.Name}
	if anon.Start().Index != 3 {
		t.Errorf("function with params starts at %d", anon.Start().Index)
	}
}

func TestWalk(t *testing.T) {
	var visited []string
	Walk(sample(token.Latin), func(n Node) bool {
		visited = append(visited, TypeName(n))
		return true
	})

	want := "Call FunctionDefinition Conditional BinaryOp VariableAccess UnaryOp VariableAccess NumberLiteral " +
		"BinaryOp VariableAccess NumberLiteral StringLiteral CountedLoop NumberLiteral NumberLiteral " +
		"ConditionalLoop BinaryOp VariableAccess NumberLiteral VariableAssign UnaryOp VariableAccess " +
		"NumberLiteral BinaryOp NumberLiteral NumberLiteral"
	if got := strings.Join(visited, " "); got != want {
		t.Errorf("Walk order =\n%s\nwant\n%s", got, want)
	}

	count := 0
	Walk(sample(token.Latin), func(n Node) bool {
		count++
		_, isFun := n.(*FunctionDefinition)
		return !isFun
	})
	if count != 6 {
		t.Errorf("pruned walk visited %d nodes, want 6", count)
	}

	Walk(nil, func(Node) bool {
		t.Error("nil tree should not be visited")
		return true
	})
}

func TestTreeString(t *testing.T) {
	tree := bin(num(1), op(token.PLUS), &FunctionDefinition{Params: []token.Token{ident("x")}, Body: ref("x")})
	want := "BinaryOp + [1:1]\n" +
		"  NumberLiteral 1 [1:1]\n" +
		"  FunctionDefinition <anonymous>(x) [1:1]\n" +
		"    VariableAccess x [1:1]\n"
	if got := TreeString(tree); got != want {
		t.Errorf("TreeString() =\n%s\nwant\n%s", got, want)
	}
}

func TestToMap(t *testing.T) {
	got := ToMap(&VariableAssign{Name: ident("x"), Value: bin(num(1), kw(token.And, token.Devanagari), str("s"))})
	want := map[string]interface{}{
		"type": "VariableAssign",
		"span": []int{0, 0},
		"name": "x",
		"value": map[string]interface{}{
			"type":  "BinaryOp",
			"span":  []int{0, 0},
			"op":    "AND",
			"left":  map[string]interface{}{"type": "NumberLiteral", "span": []int{0, 0}, "value": int64(1)},
			"right": map[string]interface{}{"type": "StringLiteral", "span": []int{0, 0}, "value": "s"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}

	full := ToMap(sample(token.Latin))
	fun := full["callee"].(map[string]interface{})
	if fun["name"] != "add" || len(fun["params"].([]string)) != 2 {
		t.Errorf("function export = %v", fun)
	}
	cond := fun["body"].(map[string]interface{})
	if len(cond["cases"].([]interface{})) != 2 || cond["else"] == nil {
		t.Errorf("conditional export = %v", cond)
	}
	if ToMap(nil) != nil {
		t.Error("ToMap(nil) should be nil")
	}
}

func TestCollectNames(t *testing.T) {
	names := CollectNames(sample(token.Latin))

	check := func(label string, got []string, want string) {
		if strings.Join(got, ",") != want {
			t.Errorf("%s = %v, want %s", label, got, want)
		}
	}
	check("Assigned", names.Assigned, "i,j")
	check("Read", names.Read, "a,b,i")
	check("Functions", names.Functions, "add")
	check("Params", names.Params, "a,b")
}

func TestBaseVisitor(t *testing.T) {
	var v Visitor = BaseVisitor{}
	Walk(sample(token.Devanagari), func(n Node) bool {
		if got := n.Accept(v); got != nil {
			t.Errorf("BaseVisitor returned %v for %s", got, TypeName(n))
		}
		return true
	})
}

func TestChildrenAndTypeName(t *testing.T) {
	if len(Children(num(1))) != 0 {
		t.Error("literals have no children")
	}
	loop := &CountedLoop{Var: ident("i"), From: num(1), To: num(2), Step: num(3), Body: num(4)}
	if len(Children(loop)) != 4 {
		t.Errorf("loop with step has %d children", len(Children(loop)))
	}
	if TypeName(nil) != "<nil>" {
		t.Errorf("TypeName(nil) = %q", TypeName(nil))
	}
	if OpName(op(token.GTE)) != ">=" || OpName(kw(token.Not, token.Devanagari)) != "NOT" {
		t.Error("OpName should return canonical spellings")
	}
}
