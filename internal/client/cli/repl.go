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

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Open(ctx context.Context, route string) error
}

const helpText = `Available commands:
  login            log in
  register         create an account
  logout           end the session
  profile          show your profile
  list             list your books
  show <id>        show one book
  add              add a book
  edit <id>        edit a book
  delete <id>      delete a book
  open <route>     navigate to a route (/, /profile, /books/new, /books/<id>, /books/<id>/edit)
  status           show the session state
  exit | quit      leave the program`

// runREPL starts a simple read-eval-print loop for the bookshelf CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by command handlers are
// printed as "Error: <message>"; for failed requests that is the message
// of the classified error. The loop exits on EOF or when the user types
// "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bookshelf %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "status":
			printlnFn("Session:", statusFn())

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "show", "edit", "delete", "open":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <%s>", cmd, argName(cmd)))
				continue
			}
			switch cmd {
			case "show":
				cmdErr = a.Show(ctx, args[0])
			case "edit":
				cmdErr = a.Edit(ctx, args[0])
			case "delete":
				cmdErr = a.Delete(ctx, args[0])
			case "open":
				cmdErr = a.Open(ctx, args[0])
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
		if err != nil {
			return
		}
	}
}

func argName(cmd string) string {
	if cmd == "open" {
		return "route"
	}
	return "id"
}
