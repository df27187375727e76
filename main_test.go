package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(strings.NewReader("main(){write(40+2)}"), &out, &errOut)
	if code != 0 {
		t.Fatalf("run() exit code = %d, want 0; stderr: %s", code, errOut.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errOut.String())
	}
	if !strings.Contains(out.String(), "int main() {") {
		t.Errorf("stdout = %s, want a main() definition", out.String())
	}
}

func TestRunLexError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(strings.NewReader("main(){@}"), &out, &errOut)
	if code == 0 {
		t.Fatalf("run() exit code = 0, want non-zero")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty on failure", out.String())
	}
	if errOut.Len() == 0 {
		t.Errorf("stderr is empty, want an error message")
	}
}

func TestRunSyntaxError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(strings.NewReader("main(){1+}"), &out, &errOut)
	if code == 0 {
		t.Fatalf("run() exit code = 0, want non-zero")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty on failure", out.String())
	}
}

func TestRunSemanticError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(strings.NewReader("main(){unknown}"), &out, &errOut)
	if code == 0 {
		t.Fatalf("run() exit code = 0, want non-zero")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty on failure", out.String())
	}
}
