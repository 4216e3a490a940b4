// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical token kinds produced by the lexer and
// consumed by the parser.
package token

// Kind identifies the lexical category of a Token.
type Kind byte

// All token kinds recognized by the lexer.
const (
	EOF Kind = iota
	UNKNOWN

	IDENT
	INT_LITERAL

	INT_KW
	IF_KW

	ASSIGN
	PLUS
	MINUS
	EQUAL

	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMICOLON
)

var kindNames = [...]string{
	EOF:         "EOF",
	UNKNOWN:     "UNKNOWN",
	IDENT:       "IDENT",
	INT_LITERAL: "INT_LITERAL",
	INT_KW:      "INT_KW",
	IF_KW:       "IF_KW",
	ASSIGN:      "ASSIGN",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	EQUAL:       "EQUAL",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	SEMICOLON:   "SEMICOLON",
}

// String returns the kind's symbolic name, used in diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "INVALID"
}

// keywords maps reserved identifiers to their keyword kind.
var keywords = map[string]Kind{
	"int": INT_KW,
	"if":  IF_KW,
}

// LookupIdent returns IDENT, or the keyword kind if ident is reserved.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// Token is a single lexical unit: a tagged kind plus the source text that
// produced it. Lexeme is empty for EOF.
type Token struct {
	Kind   Kind
	Lexeme string
}

// String renders the token for diagnostics, e.g. "IDENT(a)".
func (t Token) String() string {
	if t.Lexeme == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Lexeme + ")"
}
