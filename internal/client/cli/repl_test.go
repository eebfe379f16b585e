package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) Login(context.Context) error             { return f.record("login") }
func (f *fakeExec) Register(context.Context) error          { return f.record("register") }
func (f *fakeExec) Logout(context.Context) error            { return f.record("logout") }
func (f *fakeExec) Profile(context.Context) error           { return f.record("profile") }
func (f *fakeExec) List(context.Context) error              { return f.record("list") }
func (f *fakeExec) Add(context.Context) error               { return f.record("add") }
func (f *fakeExec) Show(_ context.Context, id string) error { return f.record("show " + id) }
func (f *fakeExec) Edit(_ context.Context, id string) error { return f.record("edit " + id) }
func (f *fakeExec) Delete(_ context.Context, id string) error {
	return f.record("delete " + id)
}
func (f *fakeExec) Open(_ context.Context, route string) error { return f.record("open " + route) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"", "login", "register", "profile", "list", "l", "add",
		"show 1", "edit 2", "delete 3", "open /books/new", "logout",
		"exit", "list",
	}, "\n") + "\n"

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "(anonymous)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "register", "profile", "list", "list", "add",
		"show 1", "edit 2", "delete 3", "open /books/new", "logout",
	}, f.calls)
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, *out, "bookshelf (anonymous)> ")
}

func TestRunREPL_UsageAndUnknown(t *testing.T) {
	out := captureOutput(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" },
		bufio.NewReader(strings.NewReader("show\nopen a b\nfrobnicate\nhelp\nstatus\n")))

	assert.Empty(t, f.calls)
	assert.Contains(t, *out, "Usage: show <id>")
	assert.Contains(t, *out, "Usage: open <route>")
	assert.Contains(t, *out, "Unknown command: frobnicate")
	assert.Contains(t, *out, helpText)
	assert.Contains(t, *out, "Session: ")
}

func TestRunREPL_PrintsErrors(t *testing.T) {
	out := captureOutput(t)

	f := &fakeExec{err: errors.New("Server error. Please try again later.")}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("list")))

	assert.Equal(t, []string{"list"}, f.calls, "last line without newline still runs")
	assert.Contains(t, *out, "Error: Server error. Please try again later.")
}
