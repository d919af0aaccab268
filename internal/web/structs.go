package web

import (
	"fmt"

	"github.com/goserg/foodlog/internal/domain"
	"github.com/goserg/foodlog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addFoodRequest struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (r addFoodRequest) toNewFood() service.NewFood {
	return service.NewFood{
		Name: r.Name,
		Nutrition: domain.Nutrition{
			Calories: r.Calories,
			Protein:  r.Protein,
			Carbs:    r.Carbs,
			Fat:      r.Fat,
		},
	}
}

type logFoodRequest struct {
	FoodID   string   `json:"food_id"`
	Quantity *float64 `json:"quantity"`
	MealType string   `json:"meal_type"`
}

func (r logFoodRequest) toNewLog() service.NewLog {
	return service.NewLog{
		FoodID:   r.FoodID,
		Quantity: r.Quantity,
		MealType: r.MealType,
	}
}

// parseBody decodes a JSON body into v. Decoding failures are validation errors.
func parseBody(ctx *fiber.Ctx, v any) error {
	if err := ctx.BodyParser(v); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}
	return nil
}
