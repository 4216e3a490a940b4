// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the two-pass assembler and fetch/decode/execute
// loop for the toolchain's 8-bit virtual machine: registers A and B, an
// 8-bit program counter and stack pointer, zero/carry flags, and a fixed
// memory with a dedicated stack region at its top.
package cpu

const (
	defaultMemorySize = 256
	defaultStackSize  = 32
)

// Options configures a CPU's memory layout. NewCPU fills in a zero
// MemorySize or StackSize with its default; CompatStackSize is used as
// given, so a zero Options runs with it false. DefaultOptions returns all
// three defaults, including CompatStackSize true.
type Options struct {
	MemorySize int // total addressable bytes; default 256

	StackSize int // bytes reserved for the stack at the top of memory; default 32

	// CompatStackSize preserves a bug in the original implementation: its
	// pop-underflow check compared against the literal stack size (32)
	// rather than the configured one. Defaults to true. Set false to use
	// StackSize instead.
	CompatStackSize bool
}

// DefaultOptions returns the spec's default memory layout: 256 bytes of
// memory, a 32-byte stack, and the historical pop-underflow behavior.
func DefaultOptions() Options {
	return Options{
		MemorySize:      defaultMemorySize,
		StackSize:       defaultStackSize,
		CompatStackSize: true,
	}
}

func (o Options) withDefaults() Options {
	if o.MemorySize <= 0 {
		o.MemorySize = defaultMemorySize
	}
	if o.StackSize <= 0 {
		o.StackSize = defaultStackSize
	}
	return o
}

// CPU represents one instance of the emulated machine: its registers,
// memory, and the currently loaded program.
type CPU struct {
	Reg       Registers
	Mem       *Memory
	Program   Program
	StackBase int

	opts Options
	log  func(format string, args ...any)
}

// NewCPU creates a CPU with the given options, allocating its memory and
// resetting its registers. A zero Options selects the spec's defaults.
func NewCPU(opts Options) *CPU {
	opts = opts.withDefaults()
	cpu := &CPU{
		Mem:       NewMemory(opts.MemorySize),
		StackBase: opts.MemorySize - opts.StackSize,
		opts:      opts,
	}
	cpu.Reg.Init(byte(opts.MemorySize - 1))
	return cpu
}

// SetLogger installs a callback invoked before each instruction executes,
// in the style of the teacher's Debugger notifications. A nil logger (the
// default) disables logging.
func (cpu *CPU) SetLogger(log func(format string, args ...any)) {
	cpu.log = log
}

// Load assembles source and installs the result as the CPU's program,
// without resetting registers or memory.
func (cpu *CPU) Load(source string) error {
	prog, err := Assemble(source)
	if err != nil {
		return err
	}
	cpu.Program = prog
	return nil
}

// Run executes the loaded program from the first instruction until it
// halts (an "hlt" opcode) or the program counter runs past the end of the
// instruction list. It returns the first RuntimeError encountered, if any.
func (cpu *CPU) Run() error {
	cpu.Reg.PC = 0
	for int(cpu.Reg.PC) < len(cpu.Program.Instructions) {
		inst := cpu.Program.Instructions[cpu.Reg.PC]
		if inst.Opcode == "hlt" {
			break
		}
		if cpu.log != nil {
			cpu.log("pc=%d %s %s %s", cpu.Reg.PC, inst.Opcode, inst.Arg1, inst.Arg2)
		}
		nextPC := cpu.Reg.PC + 1
		if err := cpu.execute(inst, &nextPC); err != nil {
			return err
		}
		cpu.Reg.PC = nextPC
	}
	return nil
}

// State is a snapshot of the CPU's observable state after a run, suitable
// for display by the driver.
type State struct {
	A, B   byte
	PC, SP byte
	Zero   bool
	Carry  bool
}

// State returns a snapshot of the CPU's current registers and flags.
func (cpu *CPU) State() State {
	return State{
		A:     cpu.Reg.A,
		B:     cpu.Reg.B,
		PC:    cpu.Reg.PC,
		SP:    cpu.Reg.SP,
		Zero:  cpu.Reg.Zero,
		Carry: cpu.Reg.Carry,
	}
}

// MemoryWindow returns a copy of count bytes of memory starting at start,
// for display purposes.
func (cpu *CPU) MemoryWindow(start, count int) []byte {
	return cpu.Mem.Window(start, count)
}
