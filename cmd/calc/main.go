// Interactive terminal calculator. Reads one expression per line, prints
// the result with six decimals, and keeps the previous result available as
// "Ans". 'q' quits, 'c' clears the screen.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/PapaEvang01/uni-projects-go/calc"
)

const historyFile = ".calc_history"

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("=== Terminal Calculator ===")
	fmt.Println("Supports full expressions (e.g., (3 + 2) * 5 - 1 / 2)")
	fmt.Println("Unary functions: sqrt, log, sin, fact, etc. | Use 'Ans' for last result")
	fmt.Println("Type 'q' to quit, 'c' to clear screen.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	lastResult := 0.0

	for {
		line, err := ln.Prompt("Enter expression: ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "q", "Q":
			fmt.Println("Goodbye!")
			return 0
		case "c", "C":
			fmt.Print("\x1b[2J\x1b[H")
			continue
		}

		result, err := calc.Evaluate(input, lastResult)
		if err != nil {
			fmt.Println(red("Error: Invalid expression"))
			continue
		}
		fmt.Println(blue(fmt.Sprintf("Result: %.6f", result)))
		lastResult = result
		ln.AppendHistory(input)
	}
}
