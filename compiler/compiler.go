// Package compiler fuses semantic analysis and C emission into a
// single recursive traversal of the AST: each node is checked against
// the current environments and, if valid, immediately turned into its
// C fragment. There is no separate checking pass and no intermediate
// representation beyond the AST itself.
package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kulych/SSharp/ast"
)

// mangle renders a SourceLang identifier as its C name. main is the
// one name left unmangled, since it must match C's own entry point.
func mangle(name string) string {
	if name == "main" {
		return "main"
	}
	return "_ssharp_" + name
}

// Translator holds the function table, which is the only state that
// survives across sibling function definitions. A Translator is used
// for exactly one Translate call.
type Translator struct {
	funcs *FuncTable
}

// NewTranslator creates a Translator with the function table
// pre-seeded with the write/1 and read/0 built-ins.
func NewTranslator() *Translator {
	return &Translator{funcs: NewFuncTable()}
}

// Translate compiles root into a complete C translation unit: the
// fixed runtime prelude followed by every function definition in
// root, in source order. It fails without producing any output if
// root contains an error, or if the program defines no "main".
func Translate(root *ast.Node) (string, error) {
	tr := NewTranslator()

	body, err := tr.translate(root, nil)
	if err != nil {
		return "", err
	}
	if !tr.funcs.Has("main") {
		return "", CreateLinkError(`program defines no function named "main"`)
	}

	var out strings.Builder
	out.WriteString(prelude)
	out.WriteString("\n")
	out.WriteString(body)
	out.WriteString("\n")
	return out.String(), nil
}

// translate dispatches on node.Kind. scope is the enclosing
// function's variable scope, or nil above any FuncDef (the Source
// spine itself never references a variable).
func (tr *Translator) translate(node *ast.Node, scope *VarScope) (string, error) {
	switch node.Kind {
	case ast.Source:
		left, err := tr.translate(node.Left, scope)
		if err != nil {
			return "", err
		}
		right, err := tr.translate(node.Right, scope)
		if err != nil {
			return "", err
		}
		return left + "\n" + right, nil

	case ast.FuncDef:
		return tr.translateFuncDef(node)

	case ast.FuncCall:
		return tr.translateFuncCall(node, scope)

	case ast.BrProg:
		inner, err := tr.translate(node.Inner, scope)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	case ast.Prog:
		left, err := tr.translate(node.Left, scope)
		if err != nil {
			return "", err
		}
		right, err := tr.translate(node.Right, scope)
		if err != nil {
			return "", err
		}
		return left + "," + right, nil

	case ast.If:
		cond, err := tr.translate(node.Cond, scope)
		if err != nil {
			return "", err
		}
		then, err := tr.translate(node.Then, scope)
		if err != nil {
			return "", err
		}
		els, err := tr.translate(node.Else, scope)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("((%s) ? \n\t%s\n\t : %s)", cond, then, els), nil

	case ast.BinOp:
		left, err := tr.translate(node.Left, scope)
		if err != nil {
			return "", err
		}
		right, err := tr.translate(node.Right, scope)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s%s%s)", left, node.Op.Symbol(), right), nil

	case ast.UnOp:
		operand, err := tr.translate(node.Operand, scope)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", node.Op.Symbol(), operand), nil

	case ast.Number:
		return strconv.FormatInt(node.IntValue, 10), nil

	case ast.Identifier:
		if scope == nil || !scope.Has(node.Name) {
			return "", CreateScopeError(fmt.Sprintf("variable %q is not visible here", node.Name))
		}
		return mangle(node.Name), nil

	default:
		panic(fmt.Sprintf("compiler: unhandled ast.Kind %v", node.Kind))
	}
}

func (tr *Translator) translateFuncDef(node *ast.Node) (string, error) {
	name := node.Name
	if name == "if" {
		return "", CreateNameError(`"if" cannot be used as a function name`)
	}

	arity := len(node.Params)
	if name == "main" && arity != 0 {
		return "", CreateArityError(`"main" must take no parameters`)
	}
	if err := tr.funcs.Insert(name, arity); err != nil {
		return "", err
	}

	scope, err := NewVarScope(node.Params)
	if err != nil {
		return "", err
	}
	for _, p := range node.Params {
		if tr.funcs.Has(p) {
			return "", CreateNameError(fmt.Sprintf("parameter %q collides with a function name", p))
		}
	}

	body, err := tr.translate(node.Body, scope)
	if err != nil {
		return "", err
	}

	retType := "u"
	if name == "main" {
		retType = "int"
	}

	return fmt.Sprintf("%s %s(%s) {\n\t return %s;\n}", retType, mangle(name), paramList(node.Params), body), nil
}

func paramList(params []string) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = "u " + mangle(p)
	}
	return strings.Join(parts, ",")
}

func (tr *Translator) translateFuncCall(node *ast.Node, scope *VarScope) (string, error) {
	arity, ok := tr.funcs.Lookup(node.Name)
	if !ok {
		return "", CreateNameError(fmt.Sprintf("call to undeclared function %q", node.Name))
	}
	if arity != len(node.Args) {
		return "", CreateArityError(fmt.Sprintf("function %q expects %d argument(s), got %d", node.Name, arity, len(node.Args)))
	}

	parts := make([]string, len(node.Args))
	for i, a := range node.Args {
		s, err := tr.translate(a, scope)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return fmt.Sprintf("%s(%s)", mangle(node.Name), strings.Join(parts, ",")), nil
}
