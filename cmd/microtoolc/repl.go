// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/beevik/term"

	"github.com/nrforsyth/microtoolc/ast"
	"github.com/nrforsyth/microtoolc/cpu"
	"github.com/nrforsyth/microtoolc/toolchain"
)

// replCmd is one REPL command: a short help line and the function that
// runs it against the session's current toolchain state.
type replCmd struct {
	help string
	run  func(sess *session, args []string) (quit bool)
}

// session holds everything the REPL commands operate on between lines:
// the toolchain itself and the last program text it was run with, so
// "run" with no arguments can re-run the most recently loaded source.
type session struct {
	tc      *toolchain.Toolchain
	lastSrc string
	tree    *prefixtree.Tree[*replCmd]
}

var commandNames = []string{"load", "run", "tokens", "ast", "asm", "mem", "reg", "help", "quit"}

func commandTree() *prefixtree.Tree[*replCmd] {
	tree := prefixtree.New[*replCmd]()
	add := func(name, help string, run func(sess *session, args []string) bool) {
		tree.Add(name, &replCmd{help: help, run: run})
	}

	add("load", "load <file>: read a source file without running it", cmdLoad)
	add("run", "run [file]: load (if given) and run a program", cmdRun)
	add("tokens", "tokens: print the last run's token stream", cmdTokens)
	add("ast", "ast: print the last run's parsed syntax tree", cmdAST)
	add("asm", "asm: print the last run's generated assembly", cmdAsm)
	add("mem", "mem <start> <count>: dump a window of CPU memory", cmdMem)
	add("reg", "reg: print the CPU's registers and flags", cmdReg)
	add("help", "help: list commands", cmdHelp)
	add("quit", "quit: exit the REPL", cmdQuit)

	return tree
}

func helpOrder(sess *session) []*replCmd {
	cmds := make([]*replCmd, 0, len(commandNames))
	for _, name := range commandNames {
		if c, err := sess.tree.FindValue(name); err == nil {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

func cmdLoad(sess *session, args []string) bool {
	if len(args) != 1 {
		fmt.Println("usage: load <file>")
		return false
	}
	src, err := readSource(args[0])
	if err != nil {
		fmt.Println(err)
		return false
	}
	sess.lastSrc = src
	fmt.Printf("loaded %s (%d bytes)\n", args[0], len(src))
	return false
}

func cmdRun(sess *session, args []string) bool {
	if len(args) == 1 {
		src, err := readSource(args[0])
		if err != nil {
			fmt.Println(err)
			return false
		}
		sess.lastSrc = src
	}
	if sess.lastSrc == "" {
		fmt.Println("no program loaded; use 'load <file>' or 'run <file>'")
		return false
	}
	if err := sess.tc.Run(sess.lastSrc); err != nil {
		fmt.Println(err)
		return false
	}
	fmt.Println("ok")
	return false
}

func cmdTokens(sess *session, _ []string) bool {
	for _, t := range sess.tc.Tokens() {
		fmt.Println(t.String())
	}
	return false
}

func cmdAST(sess *session, _ []string) bool {
	fmt.Print(ast.Print(sess.tc.AST()))
	return false
}

func cmdAsm(sess *session, _ []string) bool {
	fmt.Print(sess.tc.Assembly())
	return false
}

func cmdMem(sess *session, args []string) bool {
	if sess.tc.CPU() == nil {
		fmt.Println("no program has run yet")
		return false
	}
	start, count := 0, 16
	if len(args) >= 1 {
		fmt.Sscanf(args[0], "%d", &start)
	}
	if len(args) >= 2 {
		fmt.Sscanf(args[1], "%d", &count)
	}
	fmt.Println(sess.tc.CPU().MemoryWindow(start, count))
	return false
}

func cmdReg(sess *session, _ []string) bool {
	if sess.tc.CPU() == nil {
		fmt.Println("no program has run yet")
		return false
	}
	st := sess.tc.CPU().State()
	fmt.Printf("A=%d B=%d PC=%d SP=%d Zero=%v Carry=%v\n",
		st.A, st.B, st.PC, st.SP, st.Zero, st.Carry)
	return false
}

func cmdHelp(sess *session, _ []string) bool {
	for _, c := range helpOrder(sess) {
		fmt.Println(c.help)
	}
	return false
}

func cmdQuit(sess *session, _ []string) bool {
	return true
}

// runREPL starts the interactive command loop. Raw terminal mode is only
// engaged when stdin is a real TTY, matching the package doc example for
// term.MakeRawInput/Restore; piped input (e.g. from a test harness or a
// script) leaves terminal state untouched. Either way, lines are read
// through a plain bufio.Reader: nothing in this dependency set exposes a
// line-editing widget, so there is no raw-mode-only read path to branch
// into.
func runREPL(opts cpu.Options) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		if oldState, err := term.MakeRawInput(fd); err == nil {
			defer term.Restore(fd, oldState)
		}
	}

	sess := &session{tc: toolchain.New(opts), tree: commandTree()}

	fmt.Println("microtoolc interactive mode. Type 'help' for commands, 'quit' to exit.")

	reader := bufio.NewReader(os.Stdin)
	var lastLine string
	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			// A blank line repeats the previous command, matching the
			// debugger convention of re-running the last step/run.
			line = lastLine
		}
		if line == "" {
			continue
		}
		lastLine = line

		fields := strings.Fields(line)
		name, args := fields[0], fields[1:]

		c, err := sess.tree.FindValue(name)
		if err != nil {
			fmt.Printf("unknown command %q (%v)\n", name, err)
			continue
		}
		if c.run(sess, args) {
			break
		}
	}
}
