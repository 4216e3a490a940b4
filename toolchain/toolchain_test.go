package toolchain_test

import (
	"strings"
	"testing"

	"github.com/nrforsyth/microtoolc/cpu"
	"github.com/nrforsyth/microtoolc/toolchain"
)

func TestRunAdditionScenario(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	src := "int a; int b; int c; a = 10; b = 20; c = a + b;"
	if err := tc.Run(src); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	st := tc.CPU().State()
	mem := tc.CPU().MemoryWindow(0, 3)
	if mem[0] != 10 || mem[1] != 20 || mem[2] != 30 {
		t.Errorf("memory = %v, want [10 20 30]", mem)
	}
	if st.A != 30 || st.B != 20 || st.Zero || st.Carry {
		t.Errorf("state = %+v, want A=30 B=20 Zero=false Carry=false", st)
	}
}

func TestRunIfTakenScenario(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	src := `int a; int b; int c; a = 10; b = 20; c = a + b;
		if (c == 30) { c = c + 1; }`
	if err := tc.Run(src); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if mem := tc.CPU().MemoryWindow(2, 1); mem[0] != 31 {
		t.Errorf("memory[2] = %d, want 31", mem[0])
	}
}

func TestRunIfNotTakenScenario(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	src := `int a; int b; int c; a = 10; b = 20; c = a + b;
		if (c == 31) { c = c + 1; }`
	if err := tc.Run(src); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if mem := tc.CPU().MemoryWindow(2, 1); mem[0] != 30 {
		t.Errorf("memory[2] = %d, want 30", mem[0])
	}
}

func TestRunSubtractionWraparoundScenario(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	src := "int a; a = 0; int b; b = 1; a = a - b;"
	if err := tc.Run(src); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	st := tc.CPU().State()
	if mem := tc.CPU().MemoryWindow(0, 1); mem[0] != 255 {
		t.Errorf("memory[0] = %d, want 255", mem[0])
	}
	if st.A != 255 {
		t.Errorf("A = %d, want 255", st.A)
	}
}

func TestRunUnknownIdentifierScenario(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	err := tc.Run("int a; a = b;")
	if err == nil {
		t.Fatal("Run() succeeded, want CodeGenError referencing 'b'")
	}
	if !strings.Contains(err.Error(), "b") {
		t.Errorf("error = %v, want mention of 'b'", err)
	}
	// No CPU should have been created: code generation failed before
	// assembly existed to execute.
	if tc.CPU() != nil {
		t.Error("CPU() != nil after a code-generation failure")
	}
}

func TestRunBadIfConditionScenario(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	err := tc.Run("int a; a = 0; if (a + 1) { a = 2; }")
	if err == nil {
		t.Fatal("Run() succeeded, want CodeGenError about equality")
	}
}

func TestRunStripsLineComments(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	src := "int a; // declare a\na = 5; // set a\n"
	if err := tc.Run(src); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if mem := tc.CPU().MemoryWindow(0, 1); mem[0] != 5 {
		t.Errorf("memory[0] = %d, want 5", mem[0])
	}
}

func TestTokensEndWithEOF(t *testing.T) {
	tc := toolchain.New(cpu.DefaultOptions())
	_ = tc.Run("int a;")
	tokens := tc.Tokens()
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind.String() != "EOF" {
		t.Errorf("tokens = %v, want trailing EOF", tokens)
	}
}
