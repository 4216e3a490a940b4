// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

import (
	"bufio"
	"strings"
)

// Instruction is a single parsed assembly instruction: an opcode plus up
// to two arguments. Unused arguments are empty strings.
type Instruction struct {
	Opcode string
	Arg1   string
	Arg2   string
}

// Program is the result of assembling source text: an ordered instruction
// list and the label table that resolves jump targets to indices into it.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// stripComment removes everything from the first ';' onward.
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

// Assemble parses assembly text into a Program using two passes over the
// source lines, matching the CPU's two-pass assembler contract (spec
// section 4.4.1):
//
//   - Pass 1 walks every line, strips comments and whitespace, and records
//     each label's target as the index of the instruction that follows it,
//     without itself occupying a slot in the instruction list.
//   - Pass 2 re-walks the same lines, skipping labels, and tokenizes each
//     remaining line into an opcode and up to two arguments.
//
// A label defined more than once is rejected; the spec permits
// implementations to choose between overwriting and erroring, and this one
// errors, matching the teacher's own assembler's preference for failing
// fast on ambiguous input.
func Assemble(source string) (Program, error) {
	labels, err := scanLabels(source)
	if err != nil {
		return Program{}, err
	}
	instructions := scanInstructions(source)
	return Program{Instructions: instructions, Labels: labels}, nil
}

func scanLabels(source string) (map[string]int, error) {
	labels := make(map[string]int)
	index := 0

	scanner := bufio.NewScanner(strings.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, ":") {
			name := line[:len(line)-1]
			if _, exists := labels[name]; exists {
				return nil, &AssembleError{Message: "duplicate label '" + name + "'"}
			}
			labels[name] = index
			continue
		}
		index++
	}
	return labels, nil
}

func scanInstructions(source string) []Instruction {
	var instructions []Instruction

	scanner := bufio.NewScanner(strings.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		fields := strings.Fields(line)
		inst := Instruction{Opcode: fields[0]}
		if len(fields) > 1 {
			inst.Arg1 = fields[1]
		}
		if len(fields) > 2 {
			inst.Arg2 = fields[2]
		}
		instructions = append(instructions, inst)
	}
	return instructions
}
