package ast

import (
	"testing"

	"github.com/kulych/SSharp/token"
)

func TestDumpBinOp(t *testing.T) {
	n := NewBinOp(NewNumber(1), token.Plus, NewNumber(2))
	dumped, ok := Dump(n).(map[string]any)
	if !ok {
		t.Fatalf("Dump() = %T, want map[string]any", Dump(n))
	}
	if dumped["type"] != "BinOp" || dumped["operator"] != "+" {
		t.Errorf("Dump() = %v", dumped)
	}
}

func TestDumpNil(t *testing.T) {
	if Dump(nil) != nil {
		t.Errorf("Dump(nil) = %v, want nil", Dump(nil))
	}
}

func TestKindString(t *testing.T) {
	if FuncDef.String() != "FuncDef" {
		t.Errorf("FuncDef.String() = %q", FuncDef.String())
	}
}
