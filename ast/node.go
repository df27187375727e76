// Package ast defines the SSharp abstract syntax tree.
//
// The tree is a single tagged variant rather than a hierarchy of
// node types: one Node struct with a Kind discriminator and a field
// per payload a variant can carry. Traversal (in package compiler) is
// a switch over Kind rather than a virtual dispatch, and leaf nodes
// (Number, Identifier) cost no extra heap indirection beyond the Node
// itself.
//
// Params and Arguments are never reachable except as a child of
// exactly one parent (FuncDef and FuncCall respectively), so they are
// folded into plain fields on their parent here rather than given
// their own Kind.
package ast

import "github.com/kulych/SSharp/token"

type Kind int

const (
	Source Kind = iota
	FuncDef
	FuncCall
	BrProg
	Prog
	If
	BinOp
	UnOp
	Number
	Identifier
)

func (k Kind) String() string {
	switch k {
	case Source:
		return "Source"
	case FuncDef:
		return "FuncDef"
	case FuncCall:
		return "FuncCall"
	case BrProg:
		return "BrProg"
	case Prog:
		return "Prog"
	case If:
		return "If"
	case BinOp:
		return "BinOp"
	case UnOp:
		return "UnOp"
	case Number:
		return "Number"
	case Identifier:
		return "Identifier"
	default:
		return "Unknown"
	}
}

// Node is a single SSharp AST node. Only the fields relevant to Kind
// are populated; the zero value of the rest is meaningless.
type Node struct {
	Kind Kind

	// Source, Prog: Left is translated before Right.
	Left  *Node
	Right *Node

	// FuncDef, FuncCall, Identifier: the declared, called, or
	// referenced name.
	Name string

	// FuncDef: formal parameter names, in declaration order.
	Params []string
	// FuncDef: the function body.
	Body *Node

	// FuncCall: actual argument expressions, in call order.
	Args []*Node

	// BrProg: the braced program it wraps.
	Inner *Node

	// If: condition and both mandatory branches.
	Cond *Node
	Then *Node
	Else *Node

	// BinOp: the operator and, via Left/Right above, its operands.
	// UnOp: the operator and its single operand.
	Op      token.Kind
	Operand *Node

	// Number: the literal's value.
	IntValue int64
}

func NewSource(left, right *Node) *Node {
	return &Node{Kind: Source, Left: left, Right: right}
}

func NewFuncDef(name string, params []string, body *Node) *Node {
	return &Node{Kind: FuncDef, Name: name, Params: params, Body: body}
}

func NewFuncCall(name string, args []*Node) *Node {
	return &Node{Kind: FuncCall, Name: name, Args: args}
}

func NewBrProg(inner *Node) *Node {
	return &Node{Kind: BrProg, Inner: inner}
}

func NewProg(left, right *Node) *Node {
	return &Node{Kind: Prog, Left: left, Right: right}
}

func NewIf(cond, then, els *Node) *Node {
	return &Node{Kind: If, Cond: cond, Then: then, Else: els}
}

func NewBinOp(left *Node, op token.Kind, right *Node) *Node {
	return &Node{Kind: BinOp, Left: left, Op: op, Right: right}
}

func NewUnOp(op token.Kind, operand *Node) *Node {
	return &Node{Kind: UnOp, Op: op, Operand: operand}
}

func NewNumber(v int64) *Node {
	return &Node{Kind: Number, IntValue: v}
}

func NewIdentifier(name string) *Node {
	return &Node{Kind: Identifier, Name: name}
}
