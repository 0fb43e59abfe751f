package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(s string) error { f.calls = append(f.calls, s); return nil }

func (f *fakeExec) Add(_ context.Context, args []string) error {
	return f.record("add " + strings.Join(args, ","))
}
func (f *fakeExec) Remove(_ context.Context, args []string) error {
	return f.record("remove " + strings.Join(args, ","))
}
func (f *fakeExec) List(context.Context) error     { return f.record("list") }
func (f *fakeExec) Password(context.Context) error { return f.record("password") }
func (f *fakeExec) Submit(_ context.Context, kind models.OperationKind) error {
	return f.record(string(kind))
}
func (f *fakeExec) ShowStatus(context.Context) error { return f.record("status") }
func (f *fakeExec) History(_ context.Context, args []string) error {
	return f.record("history " + strings.Join(args, ","))
}
func (f *fakeExec) Ping(context.Context) error { return f.record("ping") }

// captureOutput silences the REPL and returns everything it printed.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origLn, orig := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	printFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn, printFn = origLn, orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"add a.txt b.txt",
		"",
		"l",
		"rm a.txt",
		"password",
		"encrypt",
		"decrypt",
		"status",
		"history 5",
		"ping",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	want := []string{
		"add a.txt,b.txt", "list", "remove a.txt", "password",
		"encrypt", "decrypt", "status", "history 5", "ping",
	}
	assert.Equal(t, want, exec.calls, "commands after exit are not read")
}

func TestRunREPL_HelpUnknownAndPrompt(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online)" },
		bufio.NewReader(strings.NewReader("help\nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "snap (online)> ")
	assert.Contains(t, *out, helpText)
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\nencrypt")))

	assert.Equal(t, []string{"list", "encrypt"}, exec.calls)
}

func TestRunREPL_EmptyInput(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))
	assert.Empty(t, exec.calls)
}
