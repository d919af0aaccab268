package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/goserg/foodlog/gen/model"
	"github.com/goserg/foodlog/gen/table"
	"github.com/goserg/foodlog/internal/domain"
	"github.com/goserg/foodlog/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.FoodStorage = (*Storage)(nil)
var _ storage.LogStorage = (*Storage)(nil)

func New(l *logrus.Logger, db *sql.DB) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "food-storage"),
	}
}

func (s *Storage) CreateFood(ctx context.Context, food domain.Food) error {
	_, err := table.Foods.
		INSERT(table.Foods.AllColumns).
		MODEL(convertFoodFromDomain(food)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) GetFood(ctx context.Context, id uuid.UUID) (domain.Food, error) {
	var food model.Foods
	err := table.Foods.
		SELECT(table.Foods.AllColumns).
		FROM(table.Foods).
		WHERE(table.Foods.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &food)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Food{}, domain.ErrNotFound
		}
		return domain.Food{}, err
	}
	return convertFoodToDomain(food)
}

func (s *Storage) CreateLog(ctx context.Context, log domain.FoodLog) error {
	_, err := table.FoodLogs.
		INSERT(table.FoodLogs.AllColumns).
		MODEL(convertLogFromDomain(log)).
		ExecContext(ctx, s.db)
	return err
}

// ListEntries returns the user's logs for date joined with their foods,
// oldest first.
func (s *Storage) ListEntries(ctx context.Context, userID uuid.UUID, date string) ([]domain.LogEntry, error) {
	var dest []struct {
		model.FoodLogs
		Food model.Foods
	}
	err := table.FoodLogs.
		SELECT(
			table.FoodLogs.AllColumns,
			table.Foods.AllColumns,
		).
		FROM(table.FoodLogs.INNER_JOIN(table.Foods, table.Foods.ID.EQ(table.FoodLogs.FoodID))).
		WHERE(
			table.FoodLogs.UserID.EQ(sqlite.String(userID.String())).
				AND(table.FoodLogs.LogDate.EQ(sqlite.String(date))),
		).
		ORDER_BY(table.FoodLogs.CreatedAt.ASC(), table.FoodLogs.ID.ASC()).
		QueryContext(ctx, s.db, &dest)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	entries := make([]domain.LogEntry, 0, len(dest))
	for _, row := range dest {
		entry, err := convertEntryToDomain(row.FoodLogs, row.Food)
		if err != nil {
			s.log.WithError(err).WithField("log_id", row.ID).Warn("skipping unreadable log")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
