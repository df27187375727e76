package parser_test

import (
	"testing"

	"github.com/kulych/SSharp/ast"
	"github.com/kulych/SSharp/lexer"
	"github.com/kulych/SSharp/parser"
	"github.com/kulych/SSharp/token"
)

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	tokens, err := lexer.New([]byte(src)).Scan()
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	node, err := parser.New(tokens).Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	return node
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.New([]byte(src)).Scan()
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	_, err = parser.New(tokens).Parse()
	if err == nil {
		t.Fatalf("parser: expected error for %q, got none", src)
	}
	return err
}

func TestParseMinimalProgram(t *testing.T) {
	root := parse(t, "main(){42}")
	if root.Kind != ast.FuncDef {
		t.Fatalf("root.Kind = %v, want FuncDef", root.Kind)
	}
	if root.Name != "main" {
		t.Errorf("root.Name = %q, want main", root.Name)
	}
	if len(root.Params) != 0 {
		t.Errorf("root.Params = %v, want none", root.Params)
	}
	if root.Body.Kind != ast.BrProg {
		t.Fatalf("root.Body.Kind = %v, want BrProg", root.Body.Kind)
	}
	if root.Body.Inner.Kind != ast.Number || root.Body.Inner.IntValue != 42 {
		t.Errorf("root.Body.Inner = %+v, want Number(42)", root.Body.Inner)
	}
}

func TestParseMultipleFunctions(t *testing.T) {
	root := parse(t, "f(a){a} main(){f(1)}")
	if root.Kind != ast.Source {
		t.Fatalf("root.Kind = %v, want Source", root.Kind)
	}
	if root.Left.Name != "f" {
		t.Errorf("root.Left.Name = %q, want f", root.Left.Name)
	}
	if root.Right.Name != "main" {
		t.Errorf("root.Right.Name = %q, want main", root.Right.Name)
	}
}

func TestParseParams(t *testing.T) {
	root := parse(t, "f(a b c){a}")
	want := []string{"a", "b", "c"}
	if len(root.Params) != len(want) {
		t.Fatalf("root.Params = %v, want %v", root.Params, want)
	}
	for i, name := range want {
		if root.Params[i] != name {
			t.Errorf("root.Params[%d] = %q, want %q", i, root.Params[i], name)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1+2*3 must bind as 1+(2*3): the outer node is '+', whose right
	// operand is the '*' node.
	root := parse(t, "main(){1+2*3}")
	expr := root.Body.Inner
	if expr.Kind != ast.BinOp || expr.Op != token.Plus {
		t.Fatalf("expr = %+v, want top-level '+'", expr)
	}
	if expr.Left.Kind != ast.Number || expr.Left.IntValue != 1 {
		t.Errorf("expr.Left = %+v, want Number(1)", expr.Left)
	}
	if expr.Right.Kind != ast.BinOp || expr.Right.Op != token.Mult {
		t.Fatalf("expr.Right = %+v, want '*'", expr.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// 1-2-3 must bind as (1-2)-3.
	root := parse(t, "main(){1-2-3}")
	expr := root.Body.Inner
	if expr.Kind != ast.BinOp || expr.Op != token.Minus {
		t.Fatalf("expr = %+v, want top-level '-'", expr)
	}
	if expr.Right.Kind != ast.Number || expr.Right.IntValue != 3 {
		t.Errorf("expr.Right = %+v, want Number(3)", expr.Right)
	}
	inner := expr.Left
	if inner.Kind != ast.BinOp || inner.Op != token.Minus {
		t.Fatalf("expr.Left = %+v, want '-'", inner)
	}
	if inner.Left.IntValue != 1 || inner.Right.IntValue != 2 {
		t.Errorf("expr.Left = %+v, want (1-2)", inner)
	}
}

func TestParseUnaryOperators(t *testing.T) {
	root := parse(t, "main(){-~5}")
	expr := root.Body.Inner
	if expr.Kind != ast.UnOp || expr.Op != token.Minus {
		t.Fatalf("expr = %+v, want outer '-'", expr)
	}
	if expr.Operand.Kind != ast.UnOp || expr.Operand.Op != token.Neg {
		t.Fatalf("expr.Operand = %+v, want '~'", expr.Operand)
	}
	if expr.Operand.Operand.IntValue != 5 {
		t.Errorf("expr.Operand.Operand = %+v, want Number(5)", expr.Operand.Operand)
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	root := parse(t, "main(){(1+2)*3}")
	expr := root.Body.Inner
	if expr.Kind != ast.BinOp || expr.Op != token.Mult {
		t.Fatalf("expr = %+v, want top-level '*'", expr)
	}
	if expr.Left.Kind != ast.BinOp || expr.Left.Op != token.Plus {
		t.Fatalf("expr.Left = %+v, want '+'", expr.Left)
	}
}

func TestParseSequencedProg(t *testing.T) {
	root := parse(t, "main(){write(1);write(2)}")
	prog := root.Body.Inner
	if prog.Kind != ast.Prog {
		t.Fatalf("prog.Kind = %v, want Prog", prog.Kind)
	}
	if prog.Left.Kind != ast.FuncCall || prog.Left.Name != "write" {
		t.Errorf("prog.Left = %+v, want write(...)", prog.Left)
	}
	if prog.Right.Kind != ast.FuncCall || prog.Right.Name != "write" {
		t.Errorf("prog.Right = %+v, want write(...)", prog.Right)
	}
}

func TestParseNestedBrProg(t *testing.T) {
	root := parse(t, "main(){{1}}")
	if root.Body.Inner.Kind != ast.BrProg {
		t.Fatalf("root.Body.Inner.Kind = %v, want BrProg", root.Body.Inner.Kind)
	}
}

func TestParseIfStatement(t *testing.T) {
	root := parse(t, "main(){if(1){2}{3}}")
	expr := root.Body.Inner
	if expr.Kind != ast.If {
		t.Fatalf("expr.Kind = %v, want If", expr.Kind)
	}
	if expr.Cond.Kind != ast.Number || expr.Cond.IntValue != 1 {
		t.Errorf("expr.Cond = %+v, want Number(1)", expr.Cond)
	}
	if expr.Then.Kind != ast.BrProg || expr.Else.Kind != ast.BrProg {
		t.Errorf("expr.Then/.Else = %+v / %+v, want BrProg", expr.Then, expr.Else)
	}
}

func TestParseIfWithBracedCondition(t *testing.T) {
	root := parse(t, "main(){if({1}){2}{3}}")
	expr := root.Body.Inner
	if expr.Cond.Kind != ast.BrProg {
		t.Fatalf("expr.Cond.Kind = %v, want BrProg", expr.Cond.Kind)
	}
}

func TestParseFuncCallNoArgs(t *testing.T) {
	root := parse(t, "main(){read()}")
	expr := root.Body.Inner
	if expr.Kind != ast.FuncCall || expr.Name != "read" || len(expr.Args) != 0 {
		t.Errorf("expr = %+v, want read() with no args", expr)
	}
}

func TestParseFuncCallMultipleArgs(t *testing.T) {
	root := parse(t, "main(){f(1,2,3)}")
	expr := root.Body.Inner
	if len(expr.Args) != 3 {
		t.Fatalf("len(expr.Args) = %d, want 3", len(expr.Args))
	}
	for i, v := range []int64{1, 2, 3} {
		if expr.Args[i].IntValue != v {
			t.Errorf("expr.Args[%d] = %+v, want Number(%d)", i, expr.Args[i], v)
		}
	}
}

func TestParseIdentifierNotFollowedByParenIsVariable(t *testing.T) {
	root := parse(t, "f(a){a}")
	body := root.Body.Inner
	if body.Kind != ast.Identifier || body.Name != "a" {
		t.Errorf("body = %+v, want Identifier(a)", body)
	}
}

func TestParseMissingClosingBrace(t *testing.T) {
	parseErr(t, "main(){1")
}

func TestParseMissingClosingParen(t *testing.T) {
	parseErr(t, "main(){f(1}")
}

func TestParseTrailingCommaInArgs(t *testing.T) {
	parseErr(t, "main(){f(1,)}")
}

func TestParseMissingSecondOperand(t *testing.T) {
	parseErr(t, "main(){1+}")
}

func TestParseMissingFunctionBody(t *testing.T) {
	parseErr(t, "main()")
}

func TestParseMissingIfBranch(t *testing.T) {
	parseErr(t, "main(){if(1){2}}")
}

func TestParseUnexpectedTrailingTokens(t *testing.T) {
	parseErr(t, "main(){1}}")
}

func TestParseNotAFunctionDefinitionAtTopLevel(t *testing.T) {
	parseErr(t, "42")
}

func TestParseEmptyInput(t *testing.T) {
	parseErr(t, "")
}
