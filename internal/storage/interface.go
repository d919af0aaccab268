package storage

import (
	"context"

	"github.com/goserg/foodlog/internal/domain"

	"github.com/google/uuid"
)

type FoodStorage interface {
	CreateFood(ctx context.Context, food domain.Food) error
	GetFood(ctx context.Context, id uuid.UUID) (domain.Food, error)
}

type LogStorage interface {
	CreateLog(ctx context.Context, log domain.FoodLog) error
	ListEntries(ctx context.Context, userID uuid.UUID, date string) ([]domain.LogEntry, error)
}
