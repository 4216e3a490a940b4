// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package toolchain ties the lexer, parser, code generator and CPU
// together into a single pipeline, and keeps each stage's output around
// for inspection — the way host.Host holds onto its assembler, CPU and
// source map so a command layer can introspect any stage of a run.
package toolchain

import (
	"github.com/nrforsyth/microtoolc/ast"
	"github.com/nrforsyth/microtoolc/codegen"
	"github.com/nrforsyth/microtoolc/cpu"
	"github.com/nrforsyth/microtoolc/lexer"
	"github.com/nrforsyth/microtoolc/parser"
	"github.com/nrforsyth/microtoolc/token"
)

// Toolchain runs one source program through the full pipeline and
// retains every intermediate artifact: tokens, AST, assembly text, and
// the CPU that ultimately executes it.
type Toolchain struct {
	opts cpu.Options
	log  func(format string, args ...any)

	tokens   []token.Token
	program  ast.Program
	assembly string
	cpu      *cpu.CPU
}

// New creates a Toolchain whose CPU uses opts (a zero MemorySize or
// StackSize selects its default; CompatStackSize is taken as given).
func New(opts cpu.Options) *Toolchain {
	return &Toolchain{opts: opts}
}

// SetLogger installs a callback invoked before each instruction executes
// during Run, forwarded to the CPU created for that run. A nil logger (the
// default) disables logging.
func (tc *Toolchain) SetLogger(log func(format string, args ...any)) {
	tc.log = log
}

// stripComments removes "//" line comments from src, the way the driver is
// required to before handing source to the lexer (spec section 6: the
// lexer itself does not know about comments).
func stripComments(src string) string {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == '/' && i+1 < len(src) && src[i+1] == '/' {
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				out = append(out, '\n')
			}
			continue
		}
		out = append(out, src[i])
	}
	return string(out)
}

// Run executes the full pipeline: strip comments, lex, parse, generate
// assembly, assemble, and execute. It stops and returns the first error
// any stage produces, leaving whatever artifacts preceding stages already
// produced available through Tokens/AST/Assembly.
func (tc *Toolchain) Run(src string) error {
	clean := stripComments(src)

	tc.tokens = lexer.All(clean)

	prog, err := parser.Parse(tc.tokens)
	if err != nil {
		return err
	}
	tc.program = prog

	asm, err := codegen.Generate(prog)
	if err != nil {
		return err
	}
	tc.assembly = asm

	tc.cpu = cpu.NewCPU(tc.opts)
	if tc.log != nil {
		tc.cpu.SetLogger(tc.log)
	}
	if err := tc.cpu.Load(asm); err != nil {
		return err
	}
	return tc.cpu.Run()
}

// Tokens returns the token stream produced by the most recent Run.
func (tc *Toolchain) Tokens() []token.Token { return tc.tokens }

// AST returns the parsed program produced by the most recent Run.
func (tc *Toolchain) AST() ast.Program { return tc.program }

// Assembly returns the generated assembly text produced by the most
// recent Run.
func (tc *Toolchain) Assembly() string { return tc.assembly }

// CPU returns the CPU used by the most recent Run, for state and memory
// inspection. It is nil until code generation has succeeded at least
// once.
func (tc *Toolchain) CPU() *cpu.CPU { return tc.cpu }
