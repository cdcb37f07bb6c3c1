package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "hostelku_backend/internals/features/menu/dto"
	model "hostelku_backend/internals/features/menu/model"
	helper "hostelku_backend/internals/helpers"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

var validate = validator.New()

/* ======================= UPSERT ======================= */
// PUT /api/menu — one row per weekday+meal slot, writes replace
func (h *MenuController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	day := strings.ToLower(strings.TrimSpace(req.MenuDay))
	meal := strings.ToLower(strings.TrimSpace(req.MenuMeal))
	if !model.IsValidWeekday(day) {
		return fiber.NewError(fiber.StatusBadRequest, "menu_day must be a weekday name")
	}
	if !model.IsValidMeal(meal) {
		return fiber.NewError(fiber.StatusBadRequest, "menu_meal must be one of breakfast, lunch, snacks, dinner")
	}

	m := model.MenuModel{
		MenuDay:   day,
		MenuMeal:  model.MealType(meal),
		MenuItems: pq.StringArray(req.MenuItems),
	}
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "menu_day"}, {Name: "menu_meal"}},
			DoUpdates: clause.AssignmentColumns([]string{"menu_items", "menu_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save menu")
	}

	return helper.JsonUpdated(c, "Menu saved", m)
}

/* ======================= LIST ======================= */
// GET /api/menu?day=
func (h *MenuController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.MenuModel{})
	if day := strings.ToLower(c.Query("day")); day != "" {
		if !model.IsValidWeekday(day) {
			return fiber.NewError(fiber.StatusBadRequest, "day must be a weekday name")
		}
		q = q.Where("menu_day = ?", day)
	}

	var rows []model.MenuModel
	if err := q.Order("menu_day ASC, menu_meal ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================= DELETE ======================= */
// DELETE /api/menu/:id
func (h *MenuController) Delete(c *fiber.Ctx) error {
	menuID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid menu ID")
	}

	res := h.DB.Delete(&model.MenuModel{}, "menu_id = ?", menuID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Menu not found")
	}
	return helper.JsonDeleted(c, "Menu removed", fiber.Map{"menu_id": menuID})
}

/* ======================= RATE ======================= */
// POST /api/menu/rate — one rating per student per slot, re-rating replaces
func (h *MenuController) Rate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	var req dto.RateMenuRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var menu model.MenuModel
	if err := h.DB.First(&menu, "menu_id = ?", req.MenuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Menu not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	rating := model.MenuRatingModel{
		RatingMenuID:    req.MenuID,
		RatingStudentID: studentID,
		RatingScore:     req.Score,
		RatingComment:   req.Comment,
	}
	if err := h.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rating_menu_id"}, {Name: "rating_student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating_score", "rating_comment", "rating_updated_at"}),
		}).
		Create(&rating).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save rating")
	}

	return helper.JsonOK(c, "Rating saved", rating)
}

/* ======================= STATS ======================= */
// GET /api/menu/stats — average score and vote count per slot
func (h *MenuController) Stats(c *fiber.Ctx) error {
	var rows []dto.MenuStats
	if err := h.DB.Table("menus").
		Select(`menus.menu_id, menus.menu_day, menus.menu_meal,
			COUNT(r.rating_id) AS rating_count,
			COALESCE(ROUND(AVG(r.rating_score)::numeric, 2), 0) AS average_score`).
		Joins("LEFT JOIN menu_ratings r ON r.rating_menu_id = menus.menu_id").
		Group("menus.menu_id, menus.menu_day, menus.menu_meal").
		Order("menus.menu_day ASC, menus.menu_meal ASC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================= NOTIFY ======================= */
// POST /api/menu/notify — record a meal broadcast
func (h *MenuController) Notify(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.NotifyMealRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	meal := strings.ToLower(strings.TrimSpace(req.Meal))
	if !model.IsValidMeal(meal) {
		return fiber.NewError(fiber.StatusBadRequest, "meal must be one of breakfast, lunch, snacks, dinner")
	}

	notif := model.MealNotificationModel{
		NotifMeal:    model.MealType(meal),
		NotifMessage: req.Message,
		NotifSentBy:  userID,
	}
	if err := h.DB.Create(&notif).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record notification")
	}
	return helper.JsonCreated(c, "Meal notification sent", notif)
}

// resolveStudentID maps the authenticated user to their student row.
func resolveStudentID(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var studentID uuid.UUID
	err := db.Table("students").
		Select("student_id").
		Where("student_user_id = ? AND student_deleted_at IS NULL", userID).
		Scan(&studentID).Error
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if studentID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No student profile linked to this account")
	}
	return studentID, nil
}
