package codegen

import "fmt"

// CodeGenError reports a problem lowering the AST to assembly: an unknown
// node kind, an undefined variable reference, an unsupported operator, or a
// malformed if condition.
type CodeGenError struct {
	Message string
}

func (e *CodeGenError) Error() string {
	return fmt.Sprintf("CodeGenerator Error: %s", e.Message)
}
