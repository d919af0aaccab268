package web

import (
	"time"

	"github.com/goserg/foodlog/auth/users"
	"github.com/goserg/foodlog/internal/domain"
)

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createdUserResponse struct {
	userResponse
	CreatedAt time.Time `json:"created_at"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type foodResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"created_at"`
}

type logResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FoodID    string    `json:"food_id"`
	Quantity  float64   `json:"quantity"`
	MealType  string    `json:"meal_type"`
	LogDate   string    `json:"log_date"`
	CreatedAt time.Time `json:"created_at"`
}

type totalResponse struct {
	Calories float64 `json:"total_calories"`
	Protein  float64 `json:"total_protein"`
	Carbs    float64 `json:"total_carbs"`
	Fat      float64 `json:"total_fat"`
}

type mealResponse struct {
	ID       string  `json:"id"`
	FoodID   string  `json:"food_id"`
	FoodName string  `json:"food_name"`
	MealType string  `json:"meal_type"`
	Quantity float64 `json:"quantity"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type summaryResponse struct {
	Date  string         `json:"date"`
	Total totalResponse  `json:"total"`
	Meals []mealResponse `json:"meals"`
}

func toUserResponse(u users.User) userResponse {
	return userResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func toCreatedUserResponse(u users.User) createdUserResponse {
	return createdUserResponse{
		userResponse: toUserResponse(u),
		CreatedAt:    u.CreatedAt,
	}
}

func toFoodResponse(f domain.Food) foodResponse {
	return foodResponse{
		ID:        f.ID.String(),
		UserID:    f.UserID.String(),
		Name:      f.Name,
		Calories:  f.Nutrition.Calories,
		Protein:   f.Nutrition.Protein,
		Carbs:     f.Nutrition.Carbs,
		Fat:       f.Nutrition.Fat,
		CreatedAt: f.CreatedAt,
	}
}

func toLogResponse(l domain.FoodLog) logResponse {
	return logResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		FoodID:    l.FoodID.String(),
		Quantity:  l.Quantity,
		MealType:  string(l.MealType),
		LogDate:   l.LogDate,
		CreatedAt: l.CreatedAt,
	}
}

func toSummaryResponse(s domain.DailySummary) summaryResponse {
	meals := make([]mealResponse, 0, len(s.Entries))
	for _, e := range s.Entries {
		n := e.Nutrition()
		meals = append(meals, mealResponse{
			ID:       e.Log.ID.String(),
			FoodID:   e.Food.ID.String(),
			FoodName: e.Food.Name,
			MealType: string(e.Log.MealType),
			Quantity: e.Log.Quantity,
			Calories: n.Calories,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
		})
	}
	return summaryResponse{
		Date: s.Date,
		Total: totalResponse{
			Calories: s.Total.Calories,
			Protein:  s.Total.Protein,
			Carbs:    s.Total.Carbs,
			Fat:      s.Total.Fat,
		},
		Meals: meals,
	}
}
