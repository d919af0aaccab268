package domain

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

var mealTypes = mapset.NewThreadUnsafeSet(Breakfast, Lunch, Dinner, Snack)

// ParseMealType never fails: anything outside the known set is a snack.
func ParseMealType(s string) MealType {
	mt := MealType(s)
	if mealTypes.Contains(mt) {
		return mt
	}
	return Snack
}

// Nutrition values are per serving.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

func (n Nutrition) Times(k float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * k,
		Protein:  n.Protein * k,
		Carbs:    n.Carbs * k,
		Fat:      n.Fat * k,
	}
}

func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

type Food struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Nutrition Nutrition
	CreatedAt time.Time
}

type FoodLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FoodID    uuid.UUID
	Quantity  float64
	MealType  MealType
	LogDate   string
	CreatedAt time.Time
}

// LogEntry is a log joined with the food it refers to.
type LogEntry struct {
	Log  FoodLog
	Food Food
}

func (e LogEntry) Nutrition() Nutrition {
	return e.Food.Nutrition.Times(e.Log.Quantity)
}

type DailySummary struct {
	Date    string
	Total   Nutrition
	Entries []LogEntry
}

type SearchResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// DateLayout is the format of FoodLog.LogDate.
const DateLayout = time.DateOnly
