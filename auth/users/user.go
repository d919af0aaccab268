package users

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// Secret is the stored bcrypt string, salt included.
type Secret struct {
	PasswordHash string
}
