package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	dto "hostelku_backend/internals/features/hostel/students/dto"
	model "hostelku_backend/internals/features/hostel/students/model"
	userModel "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

type PreregistrationController struct {
	DB *gorm.DB
}

func NewPreregistrationController(db *gorm.DB) *PreregistrationController {
	return &PreregistrationController{DB: db}
}

// Sentinel for a decision that lost the race to another reviewer; it rolls
// the approval transaction back so no account is created for a rejected row.
var errPreregAlreadyReviewed = errors.New("preregistration already reviewed")

/* ======================= SUBMIT (public) ======================= */
// POST /api/student/preregistrations
func (h *PreregistrationController) Create(c *fiber.Ctx) error {
	var req dto.CreatePreregistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A preregistration with this email already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit preregistration")
	}

	return helper.JsonCreated(c, "Preregistration submitted", m)
}

/* ======================== LIST ======================== */
// GET /api/student/preregistrations?status=&page=&per_page=
func (h *PreregistrationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PreregistrationModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		base = base.Where("prereg_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PreregistrationModel
	if err := base.
		Order("prereg_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== APPROVE ======================== */
// POST /api/student/preregistrations/:id/approve
// Creates the login account (temporary password, forced change on first
// login) and the student row in one transaction.
func (h *PreregistrationController) Approve(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var prereg model.PreregistrationModel
	if err := h.DB.Where("prereg_id = ?", c.Params("id")).First(&prereg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Preregistration not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if prereg.PreregStatus != model.PreregPending {
		return fiber.NewError(fiber.StatusConflict,
			"Preregistration already "+string(prereg.PreregStatus))
	}

	tempPassword := generateTempPassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	var createdStudent model.StudentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		account := userModel.UserModel{
			UserName:               prereg.PreregRollNo,
			Email:                  prereg.PreregEmail,
			Password:               string(hashed),
			Role:                   constants.RoleStudent,
			RequiresPasswordChange: true,
			IsActive:               true,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		createdStudent = model.StudentModel{
			StudentUserID: account.ID,
			StudentName:   prereg.PreregName,
			StudentRollNo: prereg.PreregRollNo,
			StudentCourse: prereg.PreregCourse,
			StudentBranch: prereg.PreregBranch,
			StudentYear:   prereg.PreregYear,
		}
		if err := tx.Create(&createdStudent).Error; err != nil {
			return err
		}

		// Status-guarded: a reviewer whose read went stale commits nothing.
		now := time.Now()
		res := tx.Model(&model.PreregistrationModel{}).
			Where("prereg_id = ? AND prereg_status = ?", prereg.PreregID, model.PreregPending).
			Updates(map[string]interface{}{
				"prereg_status":      model.PreregApproved,
				"prereg_reviewed_by": reviewerID,
				"prereg_reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errPreregAlreadyReviewed
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, errPreregAlreadyReviewed) {
			return fiber.NewError(fiber.StatusConflict, "Preregistration has already been reviewed")
		}
		msg := strings.ToLower(txErr.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "An account or roll number already exists for this student")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Approval failed")
	}

	// The temp password is returned once for the admin to hand over; it is
	// unusable beyond first login because of the forced change.
	return helper.JsonOK(c, "Preregistration approved", fiber.Map{
		"student":       createdStudent,
		"temp_password": tempPassword,
	})
}

/* ======================== REJECT ======================== */
// POST /api/student/preregistrations/:id/reject
func (h *PreregistrationController) Reject(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RejectPreregistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var prereg model.PreregistrationModel
	if err := h.DB.Where("prereg_id = ?", c.Params("id")).First(&prereg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Preregistration not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if prereg.PreregStatus != model.PreregPending {
		return fiber.NewError(fiber.StatusConflict,
			"Preregistration already "+string(prereg.PreregStatus))
	}

	now := time.Now()
	res := h.DB.Model(&model.PreregistrationModel{}).
		Where("prereg_id = ? AND prereg_status = ?", prereg.PreregID, model.PreregPending).
		Updates(map[string]interface{}{
			"prereg_status":        model.PreregRejected,
			"prereg_reviewed_by":   reviewerID,
			"prereg_reviewed_at":   now,
			"prereg_reject_reason": req.Reason,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Rejection failed")
	}
	if res.RowsAffected == 0 {
		if err := h.DB.Where("prereg_id = ?", prereg.PreregID).First(&prereg).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict,
				"Preregistration already "+string(prereg.PreregStatus))
		}
		return fiber.NewError(fiber.StatusConflict, "Preregistration has already been reviewed")
	}

	prereg.PreregStatus = model.PreregRejected
	prereg.PreregReviewedBy = &reviewerID
	prereg.PreregReviewedAt = &now
	prereg.PreregRejectReason = &req.Reason

	return helper.JsonUpdated(c, "Preregistration rejected", prereg)
}

func generateTempPassword() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
