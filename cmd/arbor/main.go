/*
 * Arbor
 *
 * Copyright 2026 The Arbor Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Command arbor is the interactive console: a thin line reader that forwards
text to interpreter.Evaluate and prints the resulting value or error (spec
§1 "out of scope", §6 "REPL collaborator contract"). It is an external
collaborator of the core, not part of it.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arbor-lang/arbor/config"
	"github.com/arbor-lang/arbor/interpreter"
	"github.com/arbor-lang/arbor/object"
	"github.com/arbor-lang/arbor/util"
)

func main() {
	useColor := isatty.IsTerminal(os.Stdout.Fd())

	logger := util.NewMemoryLogger(256)

	fmt.Printf("Arbor %s\n", config.ProductVersion)
	fmt.Println("Type an expression, or Ctrl-D to exit.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(useColor, ">> "),
		HistoryFile:     historyFile(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		if line == "" {
			continue
		}

		result, err := interpreter.Evaluate("<repl>", line, env)
		if err != nil {
			logger.LogError(err)
			printError(useColor, err)
			continue
		}

		fmt.Println(display(result))
	}
}

func prompt(useColor bool, s string) string {
	if !useColor {
		return s
	}
	return color.GreenString(s)
}

func printError(useColor bool, err error) {
	if !useColor {
		fmt.Println(err)
		return
	}
	fmt.Println(color.RedString("%v", err))
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.arbor_history"
}

/*
display renders an Object's REPL display form: Null -> "null", Array/Hash/
Function/Builtin via their natural Inspect forms, everything else printed
as-is.
*/
func display(o object.Object) string {
	return o.Inspect()
}
