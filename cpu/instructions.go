// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import "strconv"

// val resolves an instruction argument to its byte value: "A" and "B" read
// the corresponding register, anything else is parsed as a decimal
// integer and truncated to 8 bits.
func (cpu *CPU) val(arg string) (byte, error) {
	switch arg {
	case "A":
		return cpu.Reg.A, nil
	case "B":
		return cpu.Reg.B, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &RuntimeError{Message: "malformed operand '" + arg + "'"}
	}
	return byte(n), nil
}

// execute runs a single instruction. nextPC holds PC+1 on entry; jmp/jne
// may overwrite it with a label target, which becomes the new PC once
// execute returns (spec section 4.4.2: the jump writes into next_pc,
// which then becomes PC on the following fetch, without a second
// increment).
func (cpu *CPU) execute(inst Instruction, nextPC *byte) error {
	switch inst.Opcode {
	case "ldi":
		v, err := cpu.val(inst.Arg2)
		if err != nil {
			return err
		}
		switch inst.Arg1 {
		case "A":
			cpu.Reg.A = v
		case "B":
			cpu.Reg.B = v
		}

	case "lda":
		addr, err := cpu.val(inst.Arg1)
		if err != nil {
			return err
		}
		cpu.Reg.A = cpu.Mem.LoadByte(int(addr))

	case "sta":
		addr, err := cpu.val(inst.Arg1)
		if err != nil {
			return err
		}
		cpu.Mem.StoreByte(int(addr), cpu.Reg.A)

	case "mov":
		v, err := cpu.val(inst.Arg2)
		if err != nil {
			return err
		}
		switch inst.Arg1 {
		case "A":
			cpu.Reg.A = v
		case "B":
			cpu.Reg.B = v
		}

	case "add":
		sum := uint16(cpu.Reg.A) + uint16(cpu.Reg.B)
		cpu.Reg.A = byte(sum)
		cpu.Reg.Carry = sum > 255
		cpu.Reg.Zero = cpu.Reg.A == 0

	case "sub":
		// Carry is computed AFTER A is overwritten, comparing B against
		// the new A rather than the old one. This is a known quirk of
		// the original implementation, reproduced bit for bit.
		newA := cpu.Reg.A - cpu.Reg.B
		cpu.Reg.A = newA
		cpu.Reg.Carry = cpu.Reg.B > newA
		cpu.Reg.Zero = newA == 0

	case "cmp":
		cpu.Reg.Zero = cpu.Reg.A == cpu.Reg.B
		cpu.Reg.Carry = cpu.Reg.B > cpu.Reg.A

	case "jmp":
		target, err := cpu.resolveLabel(inst.Arg1)
		if err != nil {
			return err
		}
		*nextPC = target

	case "jne":
		if !cpu.Reg.Zero {
			target, err := cpu.resolveLabel(inst.Arg1)
			if err != nil {
				return err
			}
			*nextPC = target
		}

	case "push":
		v, err := cpu.val(inst.Arg1)
		if err != nil {
			return err
		}
		cpu.Mem.StoreByte(int(cpu.Reg.SP), v)
		cpu.Reg.SP--
		if int(cpu.Reg.SP) < cpu.StackBase {
			return &RuntimeError{Message: "Stack overflow"}
		}

	case "pop":
		cpu.Reg.SP++
		if cpu.popUnderflowed() {
			return &RuntimeError{Message: "Stack underflow"}
		}
		v := cpu.Mem.LoadByte(int(cpu.Reg.SP))
		switch inst.Arg1 {
		case "A":
			cpu.Reg.A = v
		case "B":
			cpu.Reg.B = v
		}

	case "hlt":
		// handled by the fetch/execute loop before execute is called

	default:
		return &RuntimeError{Message: "unknown opcode '" + inst.Opcode + "'"}
	}
	return nil
}

// popUnderflowed reports whether the current SP has moved past the end of
// the stack region. The original implementation's underflow check used the
// literal stack size (32) rather than the configured one; CompatStackSize
// preserves that bug by default. Set it false to use the configured
// StackSize instead.
func (cpu *CPU) popUnderflowed() bool {
	bound := cpu.StackBase + cpu.opts.StackSize
	if cpu.opts.CompatStackSize {
		bound = cpu.StackBase + 32
	}
	return int(cpu.Reg.SP) >= bound
}

func (cpu *CPU) resolveLabel(name string) (byte, error) {
	idx, ok := cpu.Program.Labels[name]
	if !ok {
		return 0, &RuntimeError{Message: "undefined label '" + name + "'"}
	}
	return byte(idx), nil
}
