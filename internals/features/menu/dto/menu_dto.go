package dto

import (
	"github.com/google/uuid"

	"hostelku_backend/internals/features/menu/model"
)

type UpsertMenuRequest struct {
	MenuDay   string   `json:"menu_day" validate:"required"`
	MenuMeal  string   `json:"menu_meal" validate:"required"`
	MenuItems []string `json:"menu_items" validate:"required,min=1,dive,required"`
}

type RateMenuRequest struct {
	MenuID  uuid.UUID `json:"menu_id" validate:"required"`
	Score   int       `json:"score" validate:"required,min=1,max=5"`
	Comment *string   `json:"comment,omitempty"`
}

type NotifyMealRequest struct {
	Meal    string `json:"meal" validate:"required"`
	Message string `json:"message" validate:"required,min=3"`
}

// MenuStats is one aggregate row for the statistics endpoint.
type MenuStats struct {
	MenuID       uuid.UUID      `json:"menu_id"`
	MenuDay      string         `json:"menu_day"`
	MenuMeal     model.MealType `json:"menu_meal"`
	RatingCount  int64          `json:"rating_count"`
	AverageScore float64        `json:"average_score"`
}
