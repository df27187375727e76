package ast

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dump builds a JSON-friendly representation of node (and its
// children) using maps and slices: a plain recursive switch over
// Kind rather than a visitor dispatch, since Node carries its own
// tag.
func Dump(node *Node) any {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case Source:
		return map[string]any{
			"type":  "Source",
			"left":  Dump(node.Left),
			"right": Dump(node.Right),
		}
	case FuncDef:
		return map[string]any{
			"type":   "FuncDef",
			"name":   node.Name,
			"params": node.Params,
			"body":   Dump(node.Body),
		}
	case FuncCall:
		args := make([]any, 0, len(node.Args))
		for _, a := range node.Args {
			args = append(args, Dump(a))
		}
		return map[string]any{
			"type": "FuncCall",
			"name": node.Name,
			"args": args,
		}
	case BrProg:
		return map[string]any{
			"type":  "BrProg",
			"inner": Dump(node.Inner),
		}
	case Prog:
		return map[string]any{
			"type":  "Prog",
			"left":  Dump(node.Left),
			"right": Dump(node.Right),
		}
	case If:
		return map[string]any{
			"type": "If",
			"cond": Dump(node.Cond),
			"then": Dump(node.Then),
			"else": Dump(node.Else),
		}
	case BinOp:
		return map[string]any{
			"type":     "BinOp",
			"operator": node.Op.Symbol(),
			"left":     Dump(node.Left),
			"right":    Dump(node.Right),
		}
	case UnOp:
		return map[string]any{
			"type":     "UnOp",
			"operator": node.Op.Symbol(),
			"operand":  Dump(node.Operand),
		}
	case Number:
		return map[string]any{
			"type":  "Number",
			"value": node.IntValue,
		}
	case Identifier:
		return map[string]any{
			"type": "Identifier",
			"name": node.Name,
		}
	default:
		return map[string]any{"type": "Unknown"}
	}
}

// PrintJSON prints node's JSON representation to stdout, indented for
// readability.
func PrintJSON(node *Node) error {
	out, err := json.MarshalIndent(Dump(node), "", "  ")
	if err != nil {
		return fmt.Errorf("error producing AST JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// WriteJSONToFile writes node's JSON representation to a file at
// path.
func WriteJSONToFile(node *Node, path string) error {
	out, err := json.MarshalIndent(Dump(node), "", "  ")
	if err != nil {
		return fmt.Errorf("error producing AST JSON: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}
