package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	dto "hostelku_backend/internals/features/engagement/dto"
	model "hostelku_backend/internals/features/engagement/model"
	helper "hostelku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	for _, role := range req.Audience {
		if !constants.IsValidRole(role) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown role in audience: "+role)
		}
	}

	m := model.AnnouncementModel{
		AnnouncementTitle:     req.Title,
		AnnouncementBody:      req.Body,
		AnnouncementAudience:  pq.StringArray(req.Audience),
		AnnouncementCreatedBy: userID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement published", m)
}

/* ======================= LIST ======================= */
// GET /api/announcements — filtered to the caller's role
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	q := h.DB.Model(&model.AnnouncementModel{})
	// Staff with management rights see everything; others only what
	// targets their role (or untargeted broadcasts).
	if !constants.RoleSatisfies(role, constants.RoleAdmin) {
		q = q.Where(
			"announcement_audience IS NULL OR cardinality(announcement_audience) = 0 OR ? = ANY(announcement_audience)",
			role,
		)
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================= UPDATE ======================= */
// PUT /api/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	announcementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid announcement ID")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.AnnouncementModel
	if err := h.DB.First(&m, "announcement_id = ?", announcementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Title != nil {
		m.AnnouncementTitle = *req.Title
	}
	if req.Body != nil {
		m.AnnouncementBody = *req.Body
	}
	if req.Audience != nil {
		for _, role := range *req.Audience {
			if !constants.IsValidRole(role) {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown role in audience: "+role)
			}
		}
		m.AnnouncementAudience = pq.StringArray(*req.Audience)
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Announcement updated", m)
}

/* ======================= DELETE ======================= */
// DELETE /api/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	announcementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid announcement ID")
	}

	res := h.DB.Delete(&model.AnnouncementModel{}, "announcement_id = ?", announcementID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
	}
	return helper.JsonDeleted(c, "Announcement removed", fiber.Map{"announcement_id": announcementID})
}
