// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Registers holds the state of the emulated 8-bit CPU: two general-purpose
// accumulators, a program counter, a stack pointer, and the zero/carry
// flags. A, B, PC and SP are all 8 bits wide; arithmetic on them wraps.
type Registers struct {
	A     byte // accumulator
	B     byte // secondary accumulator
	PC    byte // program counter: index into the instruction list
	SP    byte // stack pointer: index into memory
	Zero  bool // set by add/sub/cmp when the result/comparison was equal
	Carry bool // set by add/sub/cmp per the rules in instructions.go
}

// Init resets all registers to their power-on state, with SP set to
// spInit (the top of memory, per the CPU's configured memory size).
func (r *Registers) Init(spInit byte) {
	r.A = 0
	r.B = 0
	r.PC = 0
	r.SP = spInit
	r.Zero = false
	r.Carry = false
}
