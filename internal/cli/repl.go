package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Info(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Bench(ctx context.Context) error
	Demo(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Commands:
//
//	help              show available commands
//	register [id]     register an identifier (prompts for the password)
//	login [id]        authenticate an identifier
//	info [id]         show the stored parameters of a credential
//	list              list registered identifiers
//	bench             measure hashing cost and suggest an iteration count
//	demo              run the scripted demo on a throwaway store
//	exit | quit       leave the program
//
// Handler errors are ignored here; handlers report to the user themselves.
// The loop exits on EOF, a canceled ctx, or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("pwk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: register [id], login [id], info [id], (l)ist, bench, demo, exit")

		case "register":
			_ = a.Register(ctx, args)

		case "login":
			_ = a.Login(ctx, args)

		case "info":
			_ = a.Info(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "bench":
			_ = a.Bench(ctx)

		case "demo":
			_ = a.Demo(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
