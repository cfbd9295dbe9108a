// Package identity persists user accounts and bootstraps the admin account.
package identity

import (
	"context"
	"errors"

	"github.com/ankit/temple-ledger-go/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already exists")
)

type Store interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// Insert creates the user, failing with ErrUserExists on a duplicate
	// username.
	Insert(ctx context.Context, user models.User) (models.User, error)
}
