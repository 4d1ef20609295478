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
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, arg string) error
	Search(ctx context.Context, term string) error
	Show(ctx context.Context, arg string) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Status(ctx context.Context) error
}

const loginHint = "Not logged in. Type 'login' first."

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Commands that need a session print a hint instead of running when the
// user is not logged in. Errors returned by handlers are ignored here;
// handlers report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ug (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		arg := strings.Join(args, " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, page <n>, search [term], show <id>, edit <id>, delete <id>, status, logout, exit")
			} else {
				printlnFn("Available commands: login, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "logout", "l", "list", "page", "search", "show", "edit", "delete":
			if !a.isLoggedIn() {
				printlnFn(loginHint)
				continue
			}
			switch cmd {
			case "logout":
				_ = a.Logout(ctx)
			case "l", "list":
				_ = a.List(ctx)
			case "page":
				_ = a.Page(ctx, arg)
			case "search":
				_ = a.Search(ctx, arg)
			case "show":
				_ = a.Show(ctx, arg)
			case "edit":
				_ = a.Edit(ctx, arg)
			case "delete":
				_ = a.Delete(ctx, arg)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
