package sqlite

import (
	"github.com/goserg/foodlog/gen/model"
	"github.com/goserg/foodlog/internal/domain"

	"github.com/google/uuid"
)

func convertFoodFromDomain(food domain.Food) model.Foods {
	return model.Foods{
		ID:        food.ID.String(),
		UserID:    food.UserID.String(),
		Name:      food.Name,
		Calories:  food.Nutrition.Calories,
		Protein:   food.Nutrition.Protein,
		Carbs:     food.Nutrition.Carbs,
		Fat:       food.Nutrition.Fat,
		CreatedAt: food.CreatedAt,
	}
}

func convertFoodToDomain(food model.Foods) (domain.Food, error) {
	id, err := uuid.Parse(food.ID)
	if err != nil {
		return domain.Food{}, err
	}
	userID, err := uuid.Parse(food.UserID)
	if err != nil {
		return domain.Food{}, err
	}
	return domain.Food{
		ID:     id,
		UserID: userID,
		Name:   food.Name,
		Nutrition: domain.Nutrition{
			Calories: food.Calories,
			Protein:  food.Protein,
			Carbs:    food.Carbs,
			Fat:      food.Fat,
		},
		CreatedAt: food.CreatedAt,
	}, nil
}

func convertLogFromDomain(log domain.FoodLog) model.FoodLogs {
	return model.FoodLogs{
		ID:        log.ID.String(),
		UserID:    log.UserID.String(),
		FoodID:    log.FoodID.String(),
		Quantity:  log.Quantity,
		MealType:  string(log.MealType),
		LogDate:   log.LogDate,
		CreatedAt: log.CreatedAt,
	}
}

func convertLogToDomain(log model.FoodLogs) (domain.FoodLog, error) {
	id, err := uuid.Parse(log.ID)
	if err != nil {
		return domain.FoodLog{}, err
	}
	userID, err := uuid.Parse(log.UserID)
	if err != nil {
		return domain.FoodLog{}, err
	}
	foodID, err := uuid.Parse(log.FoodID)
	if err != nil {
		return domain.FoodLog{}, err
	}
	return domain.FoodLog{
		ID:        id,
		UserID:    userID,
		FoodID:    foodID,
		Quantity:  log.Quantity,
		MealType:  domain.ParseMealType(log.MealType),
		LogDate:   log.LogDate,
		CreatedAt: log.CreatedAt,
	}, nil
}

func convertEntryToDomain(log model.FoodLogs, food model.Foods) (domain.LogEntry, error) {
	l, err := convertLogToDomain(log)
	if err != nil {
		return domain.LogEntry{}, err
	}
	f, err := convertFoodToDomain(food)
	if err != nil {
		return domain.LogEntry{}, err
	}
	return domain.LogEntry{Log: l, Food: f}, nil
}
