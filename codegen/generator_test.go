package codegen_test

import (
	"strings"
	"testing"

	"github.com/nrforsyth/microtoolc/codegen"
	"github.com/nrforsyth/microtoolc/lexer"
	"github.com/nrforsyth/microtoolc/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.Parse(lexer.All(src))
	if err != nil {
		t.Fatalf("parser.Parse(%q) = %v", src, err)
	}
	asm, err := codegen.Generate(prog)
	if err != nil {
		t.Fatalf("codegen.Generate(%q) = %v", src, err)
	}
	return asm
}

func generateErr(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.Parse(lexer.All(src))
	if err != nil {
		t.Fatalf("parser.Parse(%q) = %v", src, err)
	}
	_, err = codegen.Generate(prog)
	return err
}

func TestGenerateEndsWithHlt(t *testing.T) {
	asm := generate(t, "int a; a = 1;")
	lines := strings.Split(strings.TrimRight(asm, "\n"), "\n")
	if lines[len(lines)-1] != "hlt" {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], "hlt")
	}
}

func TestGenerateNumberLiteral(t *testing.T) {
	asm := generate(t, "int a; a = 10;")
	if !strings.Contains(asm, "ldi A 10") {
		t.Errorf("asm missing ldi A 10:\n%s", asm)
	}
	if !strings.Contains(asm, "sta 0") {
		t.Errorf("asm missing sta 0:\n%s", asm)
	}
}

// Spec section 8: every BinaryOp with op +/- restores A from the stack
// before the arithmetic opcode, so this exact sequence (modulo inner
// recursion) must appear verbatim.
func TestGenerateBinaryOpSequence(t *testing.T) {
	asm := generate(t, "int a; int b; int c; c = a + b;")
	idx := strings.Index(asm, "push A\n")
	if idx < 0 {
		t.Fatalf("asm missing push A:\n%s", asm)
	}
	rest := asm[idx:]
	for _, op := range []string{"push A\n", "mov B A\n", "pop A\n", "add\n"} {
		i := strings.Index(rest, op)
		if i < 0 {
			t.Fatalf("asm missing %q after push A:\n%s", op, asm)
		}
		rest = rest[i+len(op):]
	}
}

func TestGenerateIfStatement(t *testing.T) {
	asm := generate(t, "int c; c = 30; if (c == 30) { c = c + 1; }")
	for _, want := range []string{"cmp\n", "jne L0\n", "L0:\n"} {
		if !strings.Contains(asm, want) {
			t.Errorf("asm missing %q:\n%s", want, asm)
		}
	}
}

func TestGenerateUndefinedVariable(t *testing.T) {
	err := generateErr(t, "int a; a = b;")
	if err == nil {
		t.Fatal("Generate succeeded, want error for undefined variable 'b'")
	}
	if !strings.Contains(err.Error(), "b") {
		t.Errorf("error = %v, want mention of 'b'", err)
	}
}

func TestGenerateBadIfCondition(t *testing.T) {
	err := generateErr(t, "int a; a = 0; if (a + 1) { a = 2; }")
	if err == nil {
		t.Fatal("Generate succeeded, want error for non-equality if condition")
	}
}

func TestGenerateRedeclaration(t *testing.T) {
	err := generateErr(t, "int a; int a;")
	if err == nil {
		t.Fatal("Generate succeeded, want error for redeclared variable")
	}
}

func TestGenerateEqualityOutsideIf(t *testing.T) {
	// "a == b == 1" parses (flat precedence) as "(a == b) == 1", an
	// equality nested inside another binary op outside an if condition.
	err := generateErr(t, "int a; int b; int c; c = a == b == 1;")
	if err == nil {
		t.Fatal("Generate succeeded, want error for '==' outside if condition")
	}
}
