package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	roomModel "hostelku_backend/internals/features/hostel/rooms/model"
	dto "hostelku_backend/internals/features/hostel/students/dto"
	model "hostelku_backend/internals/features/hostel/students/model"
	helper "hostelku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ======================== LIST ======================== */
// GET /api/students?course=&year=&room_id=&q=&page=&per_page=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	base := h.DB.Model(&model.StudentModel{})
	if course := strings.TrimSpace(c.Query("course")); course != "" {
		base = base.Where("student_course = ?", course)
	}
	if year := c.QueryInt("year"); year > 0 {
		base = base.Where("student_year = ?", year)
	}
	if roomID := strings.TrimSpace(c.Query("room_id")); roomID != "" {
		base = base.Where("student_room_id = ?", roomID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		base = base.Where("student_name ILIKE ? OR student_roll_no ILIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := base.
		Order("student_roll_no ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	var row model.StudentModel
	if err := h.DB.Where("student_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", row)
}

/* ======================== UPDATE ======================== */
// PATCH /api/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	var row model.StudentModel
	if err := h.DB.Where("student_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", row)
}

/* ======================== ALLOCATE ROOM ======================== */
// POST /api/students/:id/allocate-room
// Moves the student between rooms inside one transaction so the occupancy
// counters can never drift or exceed capacity.
func (h *StudentController) AllocateRoom(c *fiber.Ctx) error {
	var req dto.AllocateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student model.StudentModel
	if err := h.DB.Where("student_id = ?", c.Params("id")).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var room roomModel.RoomModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ?", req.RoomID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Room not found")
			}
			return err
		}
		if !room.HasVacancy() {
			return fiber.NewError(fiber.StatusConflict, "Room is full")
		}

		if student.StudentRoomID != nil {
			if *student.StudentRoomID == room.RoomID {
				return fiber.NewError(fiber.StatusConflict, "Student is already in this room")
			}
			if err := tx.Model(&roomModel.RoomModel{}).
				Where("room_id = ? AND room_occupied_count > 0", *student.StudentRoomID).
				UpdateColumn("room_occupied_count", gorm.Expr("room_occupied_count - 1")).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&roomModel.RoomModel{}).
			Where("room_id = ?", room.RoomID).
			UpdateColumn("room_occupied_count", gorm.Expr("room_occupied_count + 1")).Error; err != nil {
			return err
		}

		return tx.Model(&model.StudentModel{}).
			Where("student_id = ?", student.StudentID).
			Update("student_room_id", room.RoomID).Error
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Room allocation failed")
	}

	return helper.JsonUpdated(c, "Room allocated", fiber.Map{
		"student_id": student.StudentID,
		"room_id":    req.RoomID,
	})
}

/* ======================== DELETE ======================== */
// DELETE /api/students/:id — frees the room slot in the same transaction
func (h *StudentController) Delete(c *fiber.Ctx) error {
	var student model.StudentModel
	if err := h.DB.Where("student_id = ?", c.Params("id")).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if student.StudentRoomID != nil {
			if err := tx.Model(&roomModel.RoomModel{}).
				Where("room_id = ? AND room_occupied_count > 0", *student.StudentRoomID).
				UpdateColumn("room_occupied_count", gorm.Expr("room_occupied_count - 1")).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return helper.JsonDeleted(c, "Student removed", fiber.Map{"student_id": student.StudentID})
}
