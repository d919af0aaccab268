package storage

import (
	"context"
	"errors"

	"github.com/goserg/foodlog/auth/users"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = errors.New("email already registered")

type AuthStorage interface {
	CreateUser(ctx context.Context, user users.User, secret users.Secret) error
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserByEmail(ctx context.Context, email string) (users.User, users.Secret, error)
}
