package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/goserg/foodlog/auth/storage"
	"github.com/goserg/foodlog/auth/users"
	"github.com/goserg/foodlog/gen/model"
	"github.com/goserg/foodlog/gen/table"
	"github.com/goserg/foodlog/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: secret.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
	_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(dbUser).ExecContext(ctx, s.db)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return storage.ErrDuplicateEmail
		}
		return err
	}
	s.log.WithField("user_id", dbUser.ID).Debug("user created")
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(table.Users.PasswordHash)).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, domain.ErrNotFound
		}
		return users.User{}, err
	}
	return convertUserToModel(dbUser)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (users.User, users.Secret, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, users.Secret{}, domain.ErrNotFound
		}
		return users.User{}, users.Secret{}, err
	}
	u, err := convertUserToModel(dbUser)
	if err != nil {
		return users.User{}, users.Secret{}, err
	}
	return u, users.Secret{PasswordHash: dbUser.PasswordHash}, nil
}

func convertUserToModel(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:        id,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
