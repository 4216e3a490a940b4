// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the recursive-descent parser that turns a token
// stream into a Program AST. The grammar is intentionally small:
//
//	program     := statement*
//	statement   := var_decl | if_stmt | assignment
//	var_decl    := "int" IDENT ";"
//	assignment  := IDENT "=" expression ";"
//	if_stmt     := "if" "(" expression ")" block
//	block       := "{" statement* "}"
//	expression  := primary (("+"|"-"|"==") primary)*
//	primary     := INT_LITERAL | IDENT
//
// Operator precedence is deliberately flat: "+", "-" and "==" all bind at
// the same level and associate left to right. The parser never recovers
// from an error; the first one aborts the parse.
package parser

import (
	"strconv"

	"github.com/nrforsyth/microtoolc/ast"
	"github.com/nrforsyth/microtoolc/token"
)

// Parser consumes a token slice through a cursor, producing a Program.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over tokens. tokens must end with an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a complete program, returning a ParseError on the first
// grammar violation encountered.
func Parse(tokens []token.Token) (ast.Program, error) {
	return New(tokens).Parse()
}

// Parse runs the parser to completion.
func (p *Parser) Parse() (ast.Program, error) {
	var prog ast.Program
	for p.peek().Kind != token.EOF {
		stmt, err := p.statement()
		if err != nil {
			return ast.Program{}, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// consume advances past the current token if its kind matches, otherwise
// returns a ParseError carrying msg and the offending lexeme.
func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.peek().Kind == kind {
		return p.advance(), nil
	}
	return token.Token{}, &ParseError{Lexeme: p.peek().Lexeme, Message: msg}
}

func (p *Parser) statement() (ast.Statement, error) {
	switch p.peek().Kind {
	case token.INT_KW:
		return p.varDecl()
	case token.IF_KW:
		return p.ifStatement()
	case token.IDENT:
		if p.peekAt(1).Kind == token.ASSIGN {
			return p.assignment()
		}
	}
	return nil, &ParseError{Lexeme: p.peek().Lexeme, Message: "unexpected token"}
}

func (p *Parser) varDecl() (ast.Statement, error) {
	if _, err := p.consume(token.INT_KW, "expected 'int' keyword"); err != nil {
		return nil, err
	}
	name, err := p.consume(token.IDENT, "expected identifier after 'int'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return ast.VarDecl{Name: name.Lexeme}, nil
}

func (p *Parser) assignment() (ast.Statement, error) {
	name, err := p.consume(token.IDENT, "expected identifier for assignment")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.ASSIGN, "expected '=' for assignment"); err != nil {
		return nil, err
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "expected ';' after assignment"); err != nil {
		return nil, err
	}
	return ast.Assignment{Name: name.Lexeme, Value: value}, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	if _, err := p.consume(token.IF_KW, "expected 'if' keyword"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')' after if condition"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return ast.IfStatement{Cond: cond, Body: body}, nil
}

func (p *Parser) block() (ast.BlockStatement, error) {
	if _, err := p.consume(token.LBRACE, "expected '{' to start a block"); err != nil {
		return ast.BlockStatement{}, err
	}
	var block ast.BlockStatement
	for p.peek().Kind != token.RBRACE && p.peek().Kind != token.EOF {
		stmt, err := p.statement()
		if err != nil {
			return ast.BlockStatement{}, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := p.consume(token.RBRACE, "expected '}' to end a block"); err != nil {
		return ast.BlockStatement{}, err
	}
	return block, nil
}

// expression parses a flat left-to-right chain of "+", "-" and "=="
// operators. There are no precedence tiers: "a + b == c" parses as
// "(a + b) == c", and "a == b + c" parses as "(a == b) + c" (which the code
// generator then rejects, since "==" may only appear as the top operator of
// an if condition).
func (p *Parser) expression() (ast.Expression, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Kind {
		case token.PLUS, token.MINUS, token.EQUAL:
			op := p.advance()
			right, err := p.primary()
			if err != nil {
				return nil, err
			}
			left = ast.BinaryOp{Op: op.Lexeme, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) primary() (ast.Expression, error) {
	switch p.peek().Kind {
	case token.INT_LITERAL:
		tok := p.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, &ParseError{Lexeme: tok.Lexeme, Message: "malformed integer literal"}
		}
		return ast.NumberLiteral{Value: int32(value)}, nil
	case token.IDENT:
		tok := p.advance()
		return ast.Identifier{Name: tok.Lexeme}, nil
	}
	return nil, &ParseError{Lexeme: p.peek().Lexeme, Message: "unexpected expression"}
}
