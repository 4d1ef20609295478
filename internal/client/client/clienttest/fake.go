// Package clienttest provides an in-memory client.Client for tests.
package clienttest

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/usergate/internal/client/client"
	"github.com/dmitrijs2005/usergate/internal/client/models"
	"github.com/dmitrijs2005/usergate/internal/common"
)

const (
	Email    = "eve.holt@reqres.in"
	Password = "cityslicka"
	Token    = "QpwL5tke4Pnpja7X4"
	PerPage  = 6
)

var _ client.Client = (*Fake)(nil)

// Fake serves a fixed directory of users. The *Err fields, when set,
// make the matching call fail with that error.
type Fake struct {
	mu    sync.Mutex
	users []models.User

	LoginErr  error
	ListErr   error
	GetErr    error
	UpdateErr error
	DeleteErr error

	LoginCalls  int
	ListCalls   int
	UpdateCalls int
	DeleteCalls int

	LastUpdate models.UserUpdate
}

// New returns a Fake seeded with the twelve demo users.
func New() *Fake {
	return &Fake{users: Users()}
}

// Users returns the seed data.
func Users() []models.User {
	names := [][2]string{
		{"George", "Bluth"}, {"Janet", "Weaver"}, {"Emma", "Wong"},
		{"Eve", "Holt"}, {"Charles", "Morris"}, {"Tracey", "Ramos"},
		{"Michael", "Lawson"}, {"Lindsay", "Ferguson"}, {"Tobias", "Funke"},
		{"Byron", "Fields"}, {"George", "Edwards"}, {"Rachel", "Howell"},
	}
	out := make([]models.User, len(names))
	for i, n := range names {
		out[i] = models.User{
			ID:        i + 1,
			FirstName: n[0],
			LastName:  n[1],
			Email:     fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(n[0]), strings.ToLower(n[1])),
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", i+1),
		}
	}
	return out
}

func (f *Fake) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++

	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	if password == "" {
		return nil, &client.AuthError{Message: "Missing password"}
	}
	if email != Email || password != Password {
		return nil, &client.AuthError{Message: "user not found"}
	}
	return &models.LoginResponse{Token: Token}, nil
}

func (f *Fake) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++

	if f.ListErr != nil {
		return nil, f.ListErr
	}
	total := len(f.users)
	p := &models.UserPage{
		Page:       page,
		PerPage:    PerPage,
		Total:      total,
		TotalPages: (total + PerPage - 1) / PerPage,
		Data:       []models.User{},
	}
	start := (page - 1) * PerPage
	if start >= 0 && start < total {
		p.Data = slices.Clone(f.users[start:min(start+PerPage, total)])
	}
	return p, nil
}

func (f *Fake) GetUser(ctx context.Context, id int) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: %w: user %d", common.ErrLoadFailed, common.ErrNotFound, id)
}

func (f *Fake) UpdateUser(ctx context.Context, id int, u models.UserUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastUpdate = u

	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].FirstName, f.users[i].LastName, f.users[i].Email = u.FirstName, u.LastName, u.Email
		}
	}
	return nil
}

func (f *Fake) DeleteUser(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++

	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	// reqres answers 204 for any id and never actually removes the record.
	return nil
}

// SetErr assigns one of the *Err fields under the lock.
func (f *Fake) SetErr(target *error, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*target = err
}

// Calls returns the counters under the lock.
func (f *Fake) Calls() (login, list, update, del int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LoginCalls, f.ListCalls, f.UpdateCalls, f.DeleteCalls
}
