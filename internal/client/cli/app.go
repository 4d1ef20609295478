package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/usergate/internal/client/client"
	"github.com/dmitrijs2005/usergate/internal/client/config"
	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/client/services"
	"github.com/dmitrijs2005/usergate/internal/client/session"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

// editor is what show/edit need from the directory.
type editor interface {
	User(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, u models.UserUpdate) error
}

type App struct {
	gate   services.AuthGate
	list   *services.UserList
	dir    editor
	in     *bufio.Scanner
	out    io.Writer
	logger logging.Logger

	init  func(ctx context.Context) services.Phase
	close func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, "text", c.LogLevel)

	store, err := session.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("session store init error: %w", err)
	}

	api := client.NewHTTPClient(c.APIBaseURL, c.APIKey, c.RequestTimeout, &http.Client{})
	gate := services.NewGate(store, api, logger.With("module", "auth_gate"))
	dir := services.NewDirectory(api, logger.With("module", "directory"))

	a := newApp(gate, services.NewUserList(dir), dir, os.Stdin, os.Stdout, logger)
	a.init = gate.Init
	a.close = store.Close
	return a, nil
}

func newApp(gate services.AuthGate, list *services.UserList, dir editor, in io.Reader, out io.Writer, logger logging.Logger) *App {
	return &App{
		gate:   gate,
		list:   list,
		dir:    dir,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run reads the session store, then serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	if a.close != nil {
		defer func() {
			if err := a.close(); err != nil {
				a.logger.Warn(ctx, "failed to close session store", "error", err)
			}
		}()
	}
	if a.init != nil {
		a.init(ctx)
	}

	a.println("Welcome to usergate (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.in)
}

func (a *App) isLoggedIn() bool {
	return a.gate.IsAuthenticated()
}

func (a *App) getStatus() string {
	return a.gate.Phase().String()
}

// Status prints the session state and the list cursor.
func (a *App) Status(ctx context.Context) error {
	v := a.list.Snapshot()
	a.printf("session: %s\n", a.gate.Phase())
	if v.Loaded {
		a.printf("page %d of %d, %d shown", v.Page, v.TotalPages, len(v.Users))
		if v.Term != "" {
			a.printf(", search %q", v.Term)
		}
		a.println()
	}
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
