package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/attendance/dto"
	model "hostelku_backend/internals/features/attendance/model"
	helper "hostelku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

/* ======================== ROSTER ======================== */
// GET /api/attendance/students?date=
// Roster plus the already-recorded status for the given date (today by
// default), so re-taking attendance shows what was captured.
func (h *AttendanceController) Roster(c *fiber.Ctx) error {
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	type rosterRow struct {
		StudentID     string  `json:"student_id"`
		StudentName   string  `json:"student_name"`
		StudentRollNo string  `json:"student_roll_no"`
		Status        *string `json:"status,omitempty"`
	}

	var rows []rosterRow
	err := h.DB.
		Table("students s").
		Select(`s.student_id, s.student_name, s.student_roll_no, a.attendance_status AS status`).
		Joins(`LEFT JOIN attendance_records a
			ON a.attendance_student_id = s.student_id AND a.attendance_date = ?`, dateStr).
		Where("s.student_deleted_at IS NULL").
		Order("s.student_roll_no ASC").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"date":     dateStr,
		"students": rows,
	})
}

/* ======================== TAKE ======================== */
// POST /api/attendance/take
// Bulk upsert keyed on (student, date): retaking the same day overwrites the
// status instead of duplicating rows.
func (h *AttendanceController) Take(c *fiber.Ctx) error {
	takenBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.TakeAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if date.After(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot take attendance for a future date")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Entries {
			var exists bool
			if err := tx.Raw(
				`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = ? AND student_deleted_at IS NULL)`,
				entry.StudentID,
			).Scan(&exists).Error; err != nil {
				return err
			}
			if !exists {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown student: "+entry.StudentID.String())
			}

			res := tx.Exec(`
				INSERT INTO attendance_records
					(attendance_student_id, attendance_date, attendance_status, attendance_taken_by)
				VALUES (?, ?, ?, ?)
				ON CONFLICT (attendance_student_id, attendance_date)
				DO UPDATE SET attendance_status = EXCLUDED.attendance_status,
				              attendance_taken_by = EXCLUDED.attendance_taken_by,
				              attendance_updated_at = now()
			`, entry.StudentID, req.Date, entry.Status, takenBy)
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record attendance")
	}

	return helper.JsonOK(c, "Attendance recorded", fiber.Map{
		"date":  req.Date,
		"count": len(req.Entries),
	})
}

/* ======================== BY DATE ======================== */
// GET /api/attendance/date?date=
func (h *AttendanceController) ByDate(c *fiber.Ctx) error {
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "date is required (YYYY-MM-DD)")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	var rows []model.AttendanceModel
	if err := h.DB.
		Where("attendance_date = ?", dateStr).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"date":    dateStr,
		"records": rows,
	})
}

/* ======================== RANGE ======================== */
// GET /api/attendance/range?from=&to=&student_id=
// Per-student present/absent/leave counts across the window.
func (h *AttendanceController) Range(c *fiber.Ctx) error {
	fromStr := strings.TrimSpace(c.Query("from"))
	toStr := strings.TrimSpace(c.Query("to"))
	if fromStr == "" || toStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "from and to are required (YYYY-MM-DD)")
	}
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return fiber.NewError(fiber.StatusBadRequest, "to must not be before from")
	}

	base := h.DB.
		Table("attendance_records").
		Select(`attendance_student_id AS student_id,
			COUNT(*) FILTER (WHERE attendance_status = 'present') AS present,
			COUNT(*) FILTER (WHERE attendance_status = 'absent')  AS absent,
			COUNT(*) FILTER (WHERE attendance_status = 'leave')   AS on_leave`).
		Where("attendance_date BETWEEN ? AND ?", fromStr, toStr).
		Group("attendance_student_id")

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		base = base.Where("attendance_student_id = ?", sid)
	}

	var rows []dto.AttendanceSummary
	if err := base.Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"from":      fromStr,
		"to":        toStr,
		"summaries": rows,
	})
}
