package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/usergate/internal/client/client"
	"github.com/dmitrijs2005/usergate/internal/client/config"
	"github.com/dmitrijs2005/usergate/internal/client/services"
	"github.com/dmitrijs2005/usergate/internal/client/session"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

// App wires the web panel: session store, auth gate, directory and server.
type App struct {
	config *config.Config
	logger logging.Logger
	store  session.Store
	gate   *services.Gate
	server *Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, "json", c.LogLevel)

	store, err := session.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("session store init error: %w", err)
	}

	csrf, err := NewCSRF(c.CSRFSecret, c.CSRFTTL)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	api := client.NewHTTPClient(c.APIBaseURL, c.APIKey, c.RequestTimeout, &http.Client{})
	gate := services.NewGate(store, api, logger.With("module", "auth_gate"))
	dir := services.NewDirectory(api, logger.With("module", "directory"))
	list := services.NewUserList(dir)

	h := NewHandler(gate, list, dir, csrf, logger, c.RedirectDelay)

	return &App{
		config: c,
		logger: logger,
		store:  store,
		gate:   gate,
		server: NewServer(c.HTTPAddr, NewRouter(h), logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the server and reads the session store in the background.
// It returns when a signal arrives, ctx is done or the server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer func() {
		if err := app.store.Close(); err != nil {
			app.logger.Warn(ctx, "failed to close session store", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.SessionBackend)
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.gate.Init(ctx)
		return nil
	})
	g.Go(func() error {
		return app.server.Run(ctx)
	})
	return g.Wait()
}
