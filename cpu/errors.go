package cpu

import "fmt"

// AssembleError reports a problem turning assembly text into an
// instruction list: a duplicate label definition (this implementation's
// stricter choice). References to undefined labels are not checked here;
// they surface as a RuntimeError when the jump executes.
type AssembleError struct {
	Message string
}

func (e *AssembleError) Error() string {
	return fmt.Sprintf("Assembler Error: %s", e.Message)
}

// RuntimeError reports a fault raised while executing an assembled
// program: stack overflow, stack underflow, or a jump to an undefined
// label. It is fatal and terminates execution.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("CPU Simulation Error: %s", e.Message)
}
