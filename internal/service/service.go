package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/foodlog/internal/domain"
	"github.com/goserg/foodlog/internal/normalize"
	"github.com/goserg/foodlog/internal/storage"

	"github.com/google/uuid"
)

type FoodService struct {
	foodStorage storage.FoodStorage
	logStorage  storage.LogStorage
	now         func() time.Time
}

func New(foodStorage storage.FoodStorage, logStorage storage.LogStorage) *FoodService {
	return &FoodService{
		foodStorage: foodStorage,
		logStorage:  logStorage,
		now:         time.Now,
	}
}

type NewFood struct {
	Name      string
	Nutrition domain.Nutrition
}

type NewLog struct {
	FoodID   string
	Quantity *float64
	MealType string
}

func (s *FoodService) AddFood(ctx context.Context, userID uuid.UUID, req NewFood) (domain.Food, error) {
	req.Name = normalize.Name(req.Name)
	if err := req.validate(); err != nil {
		return domain.Food{}, err
	}
	food := domain.Food{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Nutrition: req.Nutrition,
		CreatedAt: s.now(),
	}
	if err := s.foodStorage.CreateFood(ctx, food); err != nil {
		return domain.Food{}, err
	}
	return food, nil
}

func (r NewFood) validate() error {
	var err error
	if r.Name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	n := r.Nutrition
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 {
		err = errors.Join(err, errors.New("nutrition values must not be negative"))
	}
	if err != nil {
		return errors.Join(domain.ErrValidation, err)
	}
	return nil
}

// LogFood records that the user ate Quantity servings of a food today.
// Unknown meal types are stored as snacks.
func (s *FoodService) LogFood(ctx context.Context, userID uuid.UUID, req NewLog) (domain.FoodLog, error) {
	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		return domain.FoodLog{}, fmt.Errorf("%w: food_id is required", domain.ErrValidation)
	}
	quantity := 1.0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		return domain.FoodLog{}, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if _, err := s.foodStorage.GetFood(ctx, foodID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FoodLog{}, fmt.Errorf("food %w", domain.ErrNotFound)
		}
		return domain.FoodLog{}, err
	}
	now := s.now()
	log := domain.FoodLog{
		ID:        uuid.New(),
		UserID:    userID,
		FoodID:    foodID,
		Quantity:  quantity,
		MealType:  domain.ParseMealType(req.MealType),
		LogDate:   now.Format(domain.DateLayout),
		CreatedAt: now,
	}
	if err := s.logStorage.CreateLog(ctx, log); err != nil {
		return domain.FoodLog{}, err
	}
	return log, nil
}

func (s *FoodService) DailySummary(ctx context.Context, userID uuid.UUID) (domain.DailySummary, error) {
	date := s.now().Format(domain.DateLayout)
	entries, err := s.logStorage.ListEntries(ctx, userID, date)
	if err != nil {
		return domain.DailySummary{}, err
	}
	return summarize(date, entries), nil
}

func summarize(date string, entries []domain.LogEntry) domain.DailySummary {
	summary := domain.DailySummary{
		Date:    date,
		Entries: entries,
	}
	for _, e := range entries {
		summary.Total = summary.Total.Add(e.Nutrition())
	}
	return summary
}
