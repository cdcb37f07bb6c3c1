package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnacks    MealType = "snacks"
	MealDinner    MealType = "dinner"
)

var AllMeals = []MealType{MealBreakfast, MealLunch, MealSnacks, MealDinner}

func IsValidMeal(m string) bool {
	for _, v := range AllMeals {
		if string(v) == m {
			return true
		}
	}
	return false
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func IsValidWeekday(d string) bool {
	for _, v := range weekdays {
		if v == d {
			return true
		}
	}
	return false
}

// MenuModel is the planned menu for one weekday+meal slot.
type MenuModel struct {
	MenuID uuid.UUID `gorm:"column:menu_id;type:uuid;default:gen_random_uuid();primaryKey" json:"menu_id"`

	MenuDay  string   `gorm:"column:menu_day;size:10;not null;uniqueIndex:uq_menus_day_meal" json:"menu_day"`
	MenuMeal MealType `gorm:"column:menu_meal;size:10;not null;uniqueIndex:uq_menus_day_meal" json:"menu_meal"`

	MenuItems pq.StringArray `gorm:"column:menu_items;type:text[];not null" json:"menu_items"`

	MenuCreatedAt time.Time  `gorm:"column:menu_created_at;autoCreateTime" json:"menu_created_at"`
	MenuUpdatedAt *time.Time `gorm:"column:menu_updated_at;autoUpdateTime" json:"menu_updated_at,omitempty"`
}

func (MenuModel) TableName() string { return "menus" }

// MenuRatingModel keeps one rating per student per menu slot; re-rating
// overwrites the previous score.
type MenuRatingModel struct {
	RatingID uuid.UUID `gorm:"column:rating_id;type:uuid;default:gen_random_uuid();primaryKey" json:"rating_id"`

	RatingMenuID    uuid.UUID `gorm:"column:rating_menu_id;type:uuid;not null;uniqueIndex:uq_ratings_menu_student" json:"rating_menu_id"`
	RatingStudentID uuid.UUID `gorm:"column:rating_student_id;type:uuid;not null;uniqueIndex:uq_ratings_menu_student" json:"rating_student_id"`

	RatingScore   int     `gorm:"column:rating_score;not null;check:rating_score >= 1 AND rating_score <= 5" json:"rating_score"`
	RatingComment *string `gorm:"column:rating_comment;type:text" json:"rating_comment,omitempty"`

	RatingCreatedAt time.Time  `gorm:"column:rating_created_at;autoCreateTime" json:"rating_created_at"`
	RatingUpdatedAt *time.Time `gorm:"column:rating_updated_at;autoUpdateTime" json:"rating_updated_at,omitempty"`
}

func (MenuRatingModel) TableName() string { return "menu_ratings" }

// MealNotificationModel records a "meal is served" broadcast so the mess
// staff can see what was announced and when.
type MealNotificationModel struct {
	NotifID uuid.UUID `gorm:"column:notif_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notif_id"`

	NotifMeal    MealType  `gorm:"column:notif_meal;size:10;not null" json:"notif_meal"`
	NotifMessage string    `gorm:"column:notif_message;type:text;not null" json:"notif_message"`
	NotifSentBy  uuid.UUID `gorm:"column:notif_sent_by;type:uuid;not null" json:"notif_sent_by"`

	NotifSentAt time.Time `gorm:"column:notif_sent_at;autoCreateTime" json:"notif_sent_at"`
}

func (MealNotificationModel) TableName() string { return "meal_notifications" }
