package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/goserg/foodlog/auth/storage"
	"github.com/goserg/foodlog/auth/users"
	"github.com/goserg/foodlog/internal/domain"
	"github.com/goserg/foodlog/internal/normalize"

	"github.com/google/uuid"
)

var (
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, stored string) bool
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type Service struct {
	storage storage.AuthStorage
	hasher  Hasher
	tokens  TokenIssuer
	now     func() time.Time
}

func New(storage storage.AuthStorage, hasher Hasher, tokens TokenIssuer) *Service {
	return &Service{
		storage: storage,
		hasher:  hasher,
		tokens:  tokens,
		now:     time.Now,
	}
}

func (s *Service) SignUp(ctx context.Context, name string, email string, password string) (users.User, error) {
	name = normalize.Name(name)
	email = normalize.Email(email)
	if err := validateSignUp(name, email, password); err != nil {
		return users.User{}, err
	}

	_, _, err := s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return users.User{}, ErrUserExists
	case !errors.Is(err, domain.ErrNotFound):
		return users.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return users.User{}, err
	}
	user := users.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now(),
	}
	err = s.storage.CreateUser(ctx, user, users.Secret{PasswordHash: hash})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return users.User{}, ErrUserExists
		}
		return users.User{}, err
	}
	return user, nil
}

// Login checks the credentials and issues a bearer token for the user.
// Unknown email and wrong password are reported the same way.
func (s *Service) Login(ctx context.Context, email string, password string) (string, users.User, error) {
	email = normalize.Email(email)
	if email == "" || password == "" {
		return "", users.User{}, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	user, secret, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", users.User{}, ErrInvalidCredentials
		}
		return "", users.User{}, err
	}
	if !s.hasher.Verify(password, secret.PasswordHash) {
		return "", users.User{}, ErrInvalidCredentials
	}
	t, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return "", users.User{}, err
	}
	return t, user, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (users.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return users.User{}, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	return s.storage.GetUser(ctx, id)
}

func validateSignUp(name, email, password string) error {
	var err error
	if name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	if email == "" {
		err = errors.Join(err, errors.New("email is required"))
	} else if _, perr := mail.ParseAddress(email); perr != nil {
		err = errors.Join(err, errors.New("email is not valid"))
	}
	if password == "" {
		err = errors.Join(err, errors.New("password is required"))
	} else if len(password) > maxPasswordBytes {
		err = errors.Join(err, fmt.Errorf("password must be at most %d bytes", maxPasswordBytes))
	}
	if err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	return nil
}
