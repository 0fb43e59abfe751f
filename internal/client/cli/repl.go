package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

const helpText = "Available commands: add PATH..., remove NAME, list, password, encrypt, decrypt, status, history [N|clear], ping, exit"

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a recording stub.
type execIface interface {
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Password(ctx context.Context) error
	Submit(ctx context.Context, kind models.OperationKind) error
	ShowStatus(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Ping(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop ends on end of input or on "exit"/"quit".
//
// Errors returned by handlers are ignored here; handlers report to the user
// themselves, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("snap %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		last := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if last {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "add":
			_ = a.Add(ctx, args)

		case "remove", "rm":
			_ = a.Remove(ctx, args)

		case "l", "list":
			_ = a.List(ctx)

		case "password":
			_ = a.Password(ctx)

		case "encrypt":
			_ = a.Submit(ctx, models.OperationEncrypt)

		case "decrypt":
			_ = a.Submit(ctx, models.OperationDecrypt)

		case "status":
			_ = a.ShowStatus(ctx)

		case "history":
			_ = a.History(ctx, args)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if last {
			return
		}
	}
}
