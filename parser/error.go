package parser

import "fmt"

// ParseError reports a grammar violation. It carries the lexeme that
// triggered the failure so the driver can surface a precise diagnostic.
type ParseError struct {
	Lexeme  string
	Message string
}

func (e *ParseError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("Parser Error: %s", e.Message)
	}
	return fmt.Sprintf("Parser Error: %s (got %q)", e.Message, e.Lexeme)
}
