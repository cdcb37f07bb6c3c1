package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	dto "hostelku_backend/internals/features/leave/dto"
	model "hostelku_backend/internals/features/leave/model"
	service "hostelku_backend/internals/features/leave/service"
	helper "hostelku_backend/internals/helpers"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

var validate = validator.New()

// Regular leave allows one extra gate exit (e.g. luggage run); an outpass
// is a single same-day exit.
const (
	maxVisitsLeave   = 2
	maxVisitsOutpass = 1
)

/* ======================= CREATE ======================= */
// POST /api/leave/create and POST /api/outpass/create
func (h *LeaveController) CreateLeave(c *fiber.Ctx) error {
	return h.create(c, model.LeaveTypeLeave, maxVisitsLeave)
}

func (h *LeaveController) CreateOutpass(c *fiber.Ctx) error {
	return h.create(c, model.LeaveTypeOutpass, maxVisitsOutpass)
}

func (h *LeaveController) create(c *fiber.Ctx, leaveType model.LeaveType, maxVisits int) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel(studentID, leaveType, maxVisits)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}
	if m.LeaveToDate != nil && m.LeaveToDate.Before(m.LeaveFromDate) {
		return fiber.NewError(fiber.StatusBadRequest, "leave_to_date is before leave_from_date")
	}

	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create request")
	}
	return helper.JsonCreated(c, "Request submitted", dto.FromLeaveModel(*m, nil))
}

/* ======================= MY REQUESTS ======================= */
// GET /api/leave/my-requests and GET /api/outpass/my-requests
func (h *LeaveController) MyLeaveRequests(c *fiber.Ctx) error {
	return h.myRequests(c, model.LeaveTypeLeave)
}

func (h *LeaveController) MyOutpassRequests(c *fiber.Ctx) error {
	return h.myRequests(c, model.LeaveTypeOutpass)
}

func (h *LeaveController) myRequests(c *fiber.Ctx, leaveType model.LeaveType) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	var rows []model.LeaveModel
	if err := h.DB.
		Where("leave_student_id = ? AND leave_type = ?", studentID, leaveType).
		Order("leave_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.LeaveResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromLeaveModel(r, nil))
	}
	return helper.JsonOK(c, "OK", out)
}

/* ======================= QR VIEW ======================= */
// POST /api/outpass/qr-view/:id — the owner fetches the QR payload for an
// approved request. The URL embeds the leave id; the gate scanner posts it
// back through the public scan endpoints.
func (h *LeaveController) QRView(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid leave ID")
	}

	var leave model.LeaveModel
	if err := h.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Request not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if leave.LeaveStudentID != studentID {
		return fiber.NewError(fiber.StatusForbidden, "This request belongs to another student")
	}
	if leave.LeaveStatus != model.LeaveApproved {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Request is %s, QR is only available once approved", leave.LeaveStatus))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"qr_url": fmt.Sprintf("%s/leave/qr/%s", configs.QRBaseURL, leave.LeaveID),
		"leave":  dto.FromLeaveModel(leave, nil),
	})
}

/* ======================= REVIEW (warden) ======================= */
// GET /api/leave/requests?status=&type=
func (h *LeaveController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.LeaveModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("leave_status = ?", status)
	}
	if leaveType := c.Query("type"); leaveType != "" {
		q = q.Where("leave_type = ?", leaveType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.LeaveModel
	if err := q.
		Order("leave_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.LeaveResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromLeaveModel(r, nil))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /api/leave/approve/:id
func (h *LeaveController) Approve(c *fiber.Ctx) error {
	return h.review(c, model.LeaveApproved, nil)
}

// POST /api/leave/reject/:id
func (h *LeaveController) Reject(c *fiber.Ctx) error {
	var req dto.RejectLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "A rejection reason is required")
	}
	return h.review(c, model.LeaveRejected, &req.Reason)
}

func (h *LeaveController) review(c *fiber.Ctx, status model.LeaveStatus, reason *string) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid leave ID")
	}

	var leave model.LeaveModel
	if err := h.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Request not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if _, ok := service.ApplyReviewDecision(leave.LeaveStatus, status); !ok {
		return fiber.NewError(fiber.StatusConflict,
			fmt.Sprintf("Request is already %s", leave.LeaveStatus))
	}

	// Guard the write on the status it was read at, so two racing reviewers
	// land exactly one decision.
	now := time.Now()
	res := h.DB.Model(&model.LeaveModel{}).
		Where("leave_id = ? AND leave_status = ?", leaveID, model.LeavePending).
		Updates(map[string]interface{}{
			"leave_status":        status,
			"leave_reviewed_by":   reviewerID,
			"leave_reviewed_at":   now,
			"leave_reject_reason": reason,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		// Another reviewer decided first; report the state that won.
		if err := h.DB.First(&leave, "leave_id = ?", leaveID).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Request is already %s", leave.LeaveStatus))
		}
		return fiber.NewError(fiber.StatusConflict, "Request has already been reviewed")
	}

	leave.LeaveStatus = status
	leave.LeaveReviewedBy = &reviewerID
	leave.LeaveReviewedAt = &now
	leave.LeaveRejectReason = reason

	msg := "Request approved"
	if status == model.LeaveRejected {
		msg = "Request rejected"
	}
	return helper.JsonUpdated(c, msg, dto.FromLeaveModel(leave, nil))
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
