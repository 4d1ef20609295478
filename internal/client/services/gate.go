package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/usergate/internal/client/client"
	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/client/session"
	"github.com/dmitrijs2005/usergate/internal/logging"
)

// Phase is the externally visible state of the Gate.
type Phase int

const (
	// PhaseLoading lasts until the stored token has been read once.
	PhaseLoading Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// AuthGate is what views need from the authentication state.
type AuthGate interface {
	Phase() Phase
	IsAuthenticated() bool
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context)
}

var _ AuthGate = (*Gate)(nil)

// Gate holds the process-wide authentication state. A non-empty token in
// the store is the only thing that makes the gate authenticated after a
// restart; no network call is made to validate it.
type Gate struct {
	store  session.Store
	client client.Client
	log    logging.Logger

	mu    sync.RWMutex
	phase Phase

	ready     chan struct{}
	readyOnce sync.Once
}

func NewGate(store session.Store, c client.Client, log logging.Logger) *Gate {
	return &Gate{
		store:  store,
		client: c,
		log:    log,
		phase:  PhaseLoading,
		ready:  make(chan struct{}),
	}
}

// Init reads the store once and leaves the loading phase. A store failure
// resolves to unauthenticated. Calling Init after a login or logout has
// already settled the phase does not change it.
func (g *Gate) Init(ctx context.Context) Phase {
	resolved := PhaseUnauthenticated

	token, err := g.store.Get(ctx)
	switch {
	case err != nil:
		g.log.Warn(ctx, "session store unavailable, starting unauthenticated", "error", err)
	case token != "":
		resolved = PhaseAuthenticated
	}

	g.mu.Lock()
	if g.phase == PhaseLoading {
		g.phase = resolved
	}
	p := g.phase
	g.mu.Unlock()

	g.markReady()
	g.log.Info(ctx, "auth gate initialized", "phase", p.String())
	return p
}

// Ready is closed once the gate has left PhaseLoading.
func (g *Gate) Ready() <-chan struct{} {
	return g.ready
}

// Wait blocks until the gate is ready or ctx is done.
func (g *Gate) Wait(ctx context.Context) (Phase, error) {
	select {
	case <-g.ready:
		return g.Phase(), nil
	case <-ctx.Done():
		return PhaseLoading, ctx.Err()
	}
}

func (g *Gate) Phase() Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.phase
}

func (g *Gate) IsAuthenticated() bool {
	return g.Phase() == PhaseAuthenticated
}

// Login authenticates against the remote API and persists the token.
// Any failure, including a failure to persist the token, leaves the gate
// unauthenticated and returns a *client.AuthError.
func (g *Gate) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	resp, err := g.client.Login(ctx, email, password)
	if err != nil {
		g.log.Info(ctx, "login rejected", "email", email, "error", err)
		return nil, err
	}

	if err := g.store.Set(ctx, resp.Token); err != nil {
		g.log.Error(ctx, "failed to persist session token", "error", err)
		g.settle(PhaseUnauthenticated)
		return nil, &client.AuthError{Message: client.GenericLoginMessage, Err: err}
	}

	g.settle(PhaseAuthenticated)
	g.log.Info(ctx, "logged in", "email", email)
	return resp, nil
}

// Logout clears the stored token and always ends unauthenticated.
func (g *Gate) Logout(ctx context.Context) {
	if err := g.store.Clear(ctx); err != nil {
		g.log.Warn(ctx, "failed to clear session token", "error", err)
	}
	g.settle(PhaseUnauthenticated)
	g.log.Info(ctx, "logged out")
}

func (g *Gate) settle(p Phase) {
	g.mu.Lock()
	g.phase = p
	g.mu.Unlock()
	g.markReady()
}

func (g *Gate) markReady() {
	g.readyOnce.Do(func() { close(g.ready) })
}
