package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/billing/dto"
	model "hostelku_backend/internals/features/billing/model"
	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	helper "hostelku_backend/internals/helpers"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

var validate = validator.New()

/* ======================= CREATE ======================= */
// POST /api/electricity/bills
func (h *BillController) Create(c *fiber.Ctx) error {
	var req dto.CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid due date")
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var room roomModel.RoomModel
	if err := tx.First(&room, "room_id = ?", req.BillRoomID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Occupants at billing time decide the per-head share.
	var occupants int64
	if err := tx.Table("students").
		Where("student_room_id = ? AND student_deleted_at IS NULL", room.RoomID).
		Count(&occupants).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if occupants == 0 {
		tx.Rollback()
		return fiber.NewError(fiber.StatusConflict, "Room has no occupants to bill")
	}

	// Ceiling split so the shares never add up short.
	m.BillStudentShare = (m.BillAmountINR + int(occupants) - 1) / int(occupants)

	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "A bill for this room and period already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create bill")
	}
	if m.BillID == uuid.Nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to obtain bill ID")
	}

	// One unpaid share per current occupant.
	res := tx.Exec(`
		INSERT INTO payments
			(payment_bill_id, payment_student_id, payment_amount_inr, payment_status)
		SELECT ?, s.student_id, ?, 'unpaid'
		FROM students s
		WHERE s.student_room_id = ?
		  AND s.student_deleted_at IS NULL
		ON CONFLICT (payment_bill_id, payment_student_id) DO NOTHING
	`, m.BillID, m.BillStudentShare, room.RoomID)
	if res.Error != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate student shares: "+res.Error.Error())
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Bill created and student shares generated", dto.FromBillModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/electricity/bills?room_id=&month=&year=
func (h *BillController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.ElectricityBillModel{})
	if roomID := c.Query("room_id"); roomID != "" {
		q = q.Where("bill_room_id = ?", roomID)
	}
	if month := c.QueryInt("month"); month > 0 {
		q = q.Where("bill_month = ?", month)
	}
	if year := c.QueryInt("year"); year > 0 {
		q = q.Where("bill_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ElectricityBillModel
	if err := q.
		Order("bill_year DESC, bill_month DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.BillResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromBillModel(r))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/electricity/bills/:id — bill header plus its student shares
func (h *BillController) GetByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid bill ID")
	}

	var bill model.ElectricityBillModel
	if err := h.DB.First(&bill, "bill_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Bill not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var payments []model.PaymentModel
	if err := h.DB.
		Where("payment_bill_id = ?", id).
		Order("payment_created_at ASC").
		Find(&payments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	shares := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		shares = append(shares, dto.FromPaymentModel(p))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"bill":   dto.FromBillModel(bill),
		"shares": shares,
	})
}

/* ======================== MY BILLS ======================== */
// GET /api/electricity/my-bills — the caller's shares, newest period first
func (h *BillController) MyBills(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	studentID, err := resolveStudentID(h.DB, userID)
	if err != nil {
		return err
	}

	type myBillRow struct {
		dto.PaymentResponse
		BillMonth     int16      `json:"bill_month"`
		BillYear      int16      `json:"bill_year"`
		BillUnits     int        `json:"bill_units"`
		BillAmountINR int        `json:"bill_amount_inr"`
		BillDueDate   *time.Time `json:"bill_due_date,omitempty"`
	}

	var rows []myBillRow
	if err := h.DB.Table("payments").
		Select(`payments.payment_id, payments.payment_bill_id, payments.payment_student_id,
			payments.payment_amount_inr, payments.payment_status, payments.payment_order_id,
			payments.payment_paid_at, payments.payment_created_at,
			b.bill_month, b.bill_year, b.bill_units, b.bill_amount_inr, b.bill_due_date`).
		Joins("JOIN electricity_bills b ON b.bill_id = payments.payment_bill_id AND b.bill_deleted_at IS NULL").
		Where("payments.payment_student_id = ?", studentID).
		Order("b.bill_year DESC, b.bill_month DESC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", rows)
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
