// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codegen lowers a Program AST to the textual assembly dialect
// understood by the cpu package.
//
// The spine of the generator is a single contract: after visiting any
// Expression, the result sits in register A. Register B and the stack may
// be clobbered by sub-expressions. Nothing else in the generator should
// need to know more than that.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nrforsyth/microtoolc/ast"
)

// generator walks a Program and emits assembly text. It implements both AST
// visitor interfaces.
type generator struct {
	out        strings.Builder
	addresses  map[string]int
	nextAddr   int
	labelCount int
	err        error
}

// Generate lowers prog to assembly text. It returns a CodeGenError on the
// first unsupported construct encountered.
func Generate(prog ast.Program) (string, error) {
	g := &generator{addresses: make(map[string]int)}
	for _, stmt := range prog.Statements {
		stmt.Accept(g)
		if g.err != nil {
			return "", g.err
		}
	}
	g.emit("hlt")
	return g.out.String(), nil
}

func (g *generator) emit(format string, args ...any) {
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteByte('\n')
}

func (g *generator) fail(format string, args ...any) {
	if g.err == nil {
		g.err = &CodeGenError{Message: fmt.Sprintf(format, args...)}
	}
}

func (g *generator) newLabel() string {
	label := "L" + strconv.Itoa(g.labelCount)
	g.labelCount++
	return label
}

// --- Statements ---

func (g *generator) VisitVarDecl(s ast.VarDecl) any {
	if _, ok := g.addresses[s.Name]; ok {
		g.fail("variable '%s' already declared", s.Name)
		return nil
	}
	addr := g.nextAddr
	g.nextAddr++
	g.addresses[s.Name] = addr
	g.emit("; var %s @ %d", s.Name, addr)
	return nil
}

func (g *generator) VisitAssignment(s ast.Assignment) any {
	s.Value.Accept(g)
	if g.err != nil {
		return nil
	}
	addr, ok := g.addresses[s.Name]
	if !ok {
		g.fail("undefined variable '%s'", s.Name)
		return nil
	}
	g.emit("sta %d", addr)
	return nil
}

func (g *generator) VisitBlockStatement(s ast.BlockStatement) any {
	for _, stmt := range s.Statements {
		stmt.Accept(g)
		if g.err != nil {
			return nil
		}
	}
	return nil
}

func (g *generator) VisitIfStatement(s ast.IfStatement) any {
	cond, ok := s.Cond.(ast.BinaryOp)
	if !ok || cond.Op != "==" {
		g.fail("if condition must be an equality '==' check")
		return nil
	}

	endLabel := g.newLabel()

	cond.Left.Accept(g) // A = left
	if g.err != nil {
		return nil
	}
	g.emit("push A")
	cond.Right.Accept(g) // A = right
	if g.err != nil {
		return nil
	}
	g.emit("mov B A") // B = right
	g.emit("pop A")   // A = left
	g.emit("cmp")
	g.emit("jne %s", endLabel)

	s.Body.Accept(g)
	if g.err != nil {
		return nil
	}

	g.emit("%s:", endLabel)
	return nil
}

// --- Expressions ---

func (g *generator) VisitNumberLiteral(n ast.NumberLiteral) any {
	g.emit("ldi A %d", uint8(n.Value))
	return nil
}

func (g *generator) VisitIdentifier(n ast.Identifier) any {
	addr, ok := g.addresses[n.Name]
	if !ok {
		g.fail("undefined variable '%s'", n.Name)
		return nil
	}
	g.emit("lda %d", addr)
	return nil
}

func (g *generator) VisitBinaryOp(n ast.BinaryOp) any {
	switch n.Op {
	case "+", "-":
	case "==":
		g.fail("'==' may only appear as the top operator of an if condition")
		return nil
	default:
		g.fail("unsupported operator '%s'", n.Op)
		return nil
	}

	n.Left.Accept(g) // A = left
	if g.err != nil {
		return nil
	}
	g.emit("push A")
	n.Right.Accept(g) // A = right
	if g.err != nil {
		return nil
	}
	g.emit("mov B A") // B = right
	g.emit("pop A")   // A = left

	if n.Op == "+" {
		g.emit("add")
	} else {
		g.emit("sub")
	}
	return nil
}
