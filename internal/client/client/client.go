package client

import (
	"context"

	"github.com/dmitrijs2005/usergate/internal/client/models"
)

// Client is the contract of the remote user API. Each call is a single
// request/response; there is no retry and no caching.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	UpdateUser(ctx context.Context, id int, u models.UserUpdate) error
	DeleteUser(ctx context.Context, id int) error
}
