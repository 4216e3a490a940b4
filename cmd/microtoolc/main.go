// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command microtoolc runs an 8-bit micro-toolchain program: it lexes,
// parses, generates assembly for, assembles and executes a source file,
// printing whichever pipeline stages were requested.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nrforsyth/microtoolc/ast"
	"github.com/nrforsyth/microtoolc/cpu"
	"github.com/nrforsyth/microtoolc/toolchain"
)

var (
	interactive = flag.Bool("i", false, "start an interactive REPL instead of running a file")
	show        = flag.String("show", "all", "comma-separated sections to print: tokens,ast,asm,state,all")
	verbose     = flag.Bool("v", false, "log each instruction as it executes")
	memSize     = flag.Int("mem", 0, "override memory size in bytes (0 = default)")
	stackSize   = flag.Int("stack", 0, "override stack size in bytes (0 = default)")
)

func main() {
	flag.Parse()

	opts := cpu.DefaultOptions()
	if *memSize > 0 {
		opts.MemorySize = *memSize
	}
	if *stackSize > 0 {
		opts.StackSize = *stackSize
	}

	if *interactive {
		runREPL(opts)
		return
	}

	src, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	tc := toolchain.New(opts)
	if *verbose {
		tc.SetLogger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		})
	}
	runErr := tc.Run(src)
	printSections(os.Stdout, tc, *show)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", runErr)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

func wantsSection(show, name string) bool {
	if show == "all" {
		return true
	}
	for _, s := range strings.Split(show, ",") {
		if strings.TrimSpace(s) == name {
			return true
		}
	}
	return false
}

func printSections(w io.Writer, tc *toolchain.Toolchain, show string) {
	if wantsSection(show, "tokens") {
		fmt.Fprintln(w, "-- tokens --")
		for _, t := range tc.Tokens() {
			fmt.Fprintln(w, t.String())
		}
	}
	if wantsSection(show, "ast") && len(tc.AST().Statements) > 0 {
		fmt.Fprintln(w, "-- ast --")
		fmt.Fprint(w, ast.Print(tc.AST()))
	}
	if wantsSection(show, "asm") && tc.Assembly() != "" {
		fmt.Fprintln(w, "-- assembly --")
		fmt.Fprint(w, tc.Assembly())
	}
	if wantsSection(show, "state") && tc.CPU() != nil {
		fmt.Fprintln(w, "-- state --")
		st := tc.CPU().State()
		fmt.Fprintf(w, "A=%d B=%d PC=%d SP=%d Zero=%v Carry=%v\n",
			st.A, st.B, st.PC, st.SP, st.Zero, st.Carry)
	}
}
