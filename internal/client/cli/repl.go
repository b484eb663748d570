package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Start(ctx context.Context) error
	Status(ctx context.Context) error
	Clear(ctx context.Context) error
	History(ctx context.Context) error
	Intro(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the Inkveil CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inkveil %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: add <path ...>, remove <id>, (l)ist, start, status, clear, history, intro [off], exit")

		case "add":
			_ = a.Add(ctx, args)

		case "remove", "rm":
			_ = a.Remove(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "start":
			_ = a.Start(ctx)

		case "status":
			_ = a.Status(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "history":
			_ = a.History(ctx)

		case "intro":
			_ = a.Intro(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
