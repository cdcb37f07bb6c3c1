package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/complaints/dto"
	model "hostelku_backend/internals/features/complaints/model"
	helper "hostelku_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/complaints
func (h *ComplaintController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if !model.IsValidCategory(category) {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown complaint category")
	}

	m := model.ComplaintModel{
		ComplaintStudentID:   studentID,
		ComplaintCategory:    model.ComplaintCategory(category),
		ComplaintDescription: req.Description,
		ComplaintStatus:      model.ComplaintOpen,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to file complaint")
	}
	return helper.JsonCreated(c, "Complaint filed", m)
}

/* ======================= MY COMPLAINTS ======================= */
// GET /api/complaints/my
func (h *ComplaintController) My(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	var rows []model.ComplaintModel
	if err := h.DB.
		Where("complaint_student_id = ?", studentID).
		Order("complaint_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ======================= LIST (staff) ======================= */
// GET /api/complaints?status=&category=
func (h *ComplaintController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.ComplaintModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("complaint_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("complaint_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ComplaintModel
	if err := q.
		Order("complaint_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= RESOLVE ======================= */
// POST /api/complaints/resolve/:id
func (h *ComplaintController) Resolve(c *fiber.Ctx) error {
	resolverID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	complaintID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid complaint ID")
	}

	var req dto.ResolveComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Resolution notes are required")
	}

	var m model.ComplaintModel
	if err := h.DB.First(&m, "complaint_id = ?", complaintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Complaint not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if m.ComplaintStatus == model.ComplaintResolved {
		return fiber.NewError(fiber.StatusConflict, "Complaint is already resolved")
	}

	now := time.Now()
	m.ComplaintStatus = model.ComplaintResolved
	m.ComplaintResolvedBy = &resolverID
	m.ComplaintResolvedAt = &now
	m.ComplaintResolveNotes = &req.Notes

	if err := h.DB.Save(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Complaint resolved", m)
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
