package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "hostelku_backend/internals/features/leave/dto"
	model "hostelku_backend/internals/features/leave/model"
	service "hostelku_backend/internals/features/leave/service"
	helper "hostelku_backend/internals/helpers"
)

// ScanController backs the public gate endpoints. They are unauthenticated:
// the scanning devices at the gate carry no user session, only the QR URL.
type ScanController struct {
	DB *gorm.DB
}

func NewScanController(db *gorm.DB) *ScanController {
	return &ScanController{DB: db}
}

/* ======================= SCAN ======================= */
// POST /api/leave/qr/:id (outgoing) and POST /api/leave/incoming-qr/:id
func (h *ScanController) ScanOutgoing(c *fiber.Ctx) error {
	return h.scan(c, model.VisitOut)
}

func (h *ScanController) ScanIncoming(c *fiber.Ctx) error {
	return h.scan(c, model.VisitIn)
}

func (h *ScanController) scan(c *fiber.Ctx, visitType model.VisitType) error {
	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid leave ID")
	}

	var req dto.ScanRequest
	_ = c.BodyParser(&req) // location is optional, an empty body is fine

	var (
		leave    model.LeaveModel
		visits   []model.VisitModel
		decision service.ScanDecision
	)

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// Row lock so two scanners cannot both pass the counter check.
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&leave, "leave_id = ?", leaveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Leave not found")
			}
			return err
		}

		var lastSameGate *time.Time
		var last model.VisitModel
		err := tx.
			Where("visit_leave_id = ? AND visit_type = ?", leaveID, visitType).
			Order("visit_scanned_at DESC").
			First(&last).Error
		switch {
		case err == nil:
			lastSameGate = &last.VisitScannedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no prior visit of this kind
		default:
			return err
		}

		now := time.Now()
		decision = service.DecideScan(leave, visitType, lastSameGate, now)
		if !decision.Allowed {
			return nil // rejection is a normal outcome, commit nothing
		}

		visit := model.VisitModel{
			VisitLeaveID:   leaveID,
			VisitType:      visitType,
			VisitScannedAt: now,
			VisitLocation:  req.Location,
		}
		if err := tx.Create(&visit).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		switch visitType {
		case model.VisitOut:
			leave.LeaveOutgoingVisitCount++
			updates["leave_outgoing_visit_count"] = leave.LeaveOutgoingVisitCount
		case model.VisitIn:
			leave.LeaveIncomingVisitCount++
			updates["leave_incoming_visit_count"] = leave.LeaveIncomingVisitCount
		}
		if decision.LockAfter {
			leave.LeaveVisitLocked = true
			updates["leave_visit_locked"] = true
		}
		return tx.Model(&model.LeaveModel{}).
			Where("leave_id = ?", leaveID).
			Updates(updates).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, txErr.Error())
	}

	if err := h.DB.
		Where("visit_leave_id = ?", leaveID).
		Order("visit_scanned_at ASC").
		Find(&visits).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !decision.Allowed {
		// Informative reject: the guard still sees the full record and the
		// original scan time, just with a 403 envelope.
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success":    false,
			"message":    decision.Reason,
			"scanned_at": decision.LastScanAt,
			"data":       dto.FromLeaveModel(leave, visits),
		})
	}

	return helper.JsonOK(c, "Visit recorded", dto.FromLeaveModel(leave, visits))
}

/* ======================= PUBLIC DETAILS ======================= */
// GET /api/leave/:id — the scan page re-fetches the record after a reject.
func (h *ScanController) GetByID(c *fiber.Ctx) error {
	leaveID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid leave ID")
	}

	var leave model.LeaveModel
	if err := h.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Leave not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var visits []model.VisitModel
	if err := h.DB.
		Where("visit_leave_id = ?", leaveID).
		Order("visit_scanned_at ASC").
		Find(&visits).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromLeaveModel(leave, visits))
}
