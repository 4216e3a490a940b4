package lexer_test

import (
	"reflect"
	"testing"

	"github.com/nrforsyth/microtoolc/lexer"
	"github.com/nrforsyth/microtoolc/token"
)

func TestNext(t *testing.T) {
	src := `int a; int bb; a = 10; if (a == bb) { a = a + 1 - bb; }`

	want := []token.Token{
		{Kind: token.INT_KW, Lexeme: "int"},
		{Kind: token.IDENT, Lexeme: "a"},
		{Kind: token.SEMICOLON, Lexeme: ";"},
		{Kind: token.INT_KW, Lexeme: "int"},
		{Kind: token.IDENT, Lexeme: "bb"},
		{Kind: token.SEMICOLON, Lexeme: ";"},
		{Kind: token.IDENT, Lexeme: "a"},
		{Kind: token.ASSIGN, Lexeme: "="},
		{Kind: token.INT_LITERAL, Lexeme: "10"},
		{Kind: token.SEMICOLON, Lexeme: ";"},
		{Kind: token.IF_KW, Lexeme: "if"},
		{Kind: token.LPAREN, Lexeme: "("},
		{Kind: token.IDENT, Lexeme: "a"},
		{Kind: token.EQUAL, Lexeme: "=="},
		{Kind: token.IDENT, Lexeme: "bb"},
		{Kind: token.RPAREN, Lexeme: ")"},
		{Kind: token.LBRACE, Lexeme: "{"},
		{Kind: token.IDENT, Lexeme: "a"},
		{Kind: token.ASSIGN, Lexeme: "="},
		{Kind: token.IDENT, Lexeme: "a"},
		{Kind: token.PLUS, Lexeme: "+"},
		{Kind: token.INT_LITERAL, Lexeme: "1"},
		{Kind: token.MINUS, Lexeme: "-"},
		{Kind: token.IDENT, Lexeme: "bb"},
		{Kind: token.SEMICOLON, Lexeme: ";"},
		{Kind: token.RBRACE, Lexeme: "}"},
		{Kind: token.EOF},
	}

	got := lexer.All(src)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All(%q) =\n%v\nwant\n%v", src, got, want)
	}
}

func TestNextEmpty(t *testing.T) {
	got := lexer.All("")
	want := []token.Token{{Kind: token.EOF}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All(\"\") = %v, want %v", got, want)
	}
}

func TestNextUnknown(t *testing.T) {
	got := lexer.All("a $ b")
	want := []token.Token{
		{Kind: token.IDENT, Lexeme: "a"},
		{Kind: token.UNKNOWN, Lexeme: "$"},
		{Kind: token.IDENT, Lexeme: "b"},
		{Kind: token.EOF},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All(\"a $ b\") = %v, want %v", got, want)
	}
}

func TestNextAssignVsEqual(t *testing.T) {
	l := lexer.New("= ==")
	if tok := l.Next(); tok.Kind != token.ASSIGN {
		t.Errorf("first token = %v, want ASSIGN", tok)
	}
	if tok := l.Next(); tok.Kind != token.EQUAL {
		t.Errorf("second token = %v, want EQUAL", tok)
	}
}

func TestNextPastEOF(t *testing.T) {
	l := lexer.New("")
	first := l.Next()
	second := l.Next()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Errorf("Next() past end = %v, %v, want repeated EOF", first, second)
	}
}
