package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hostelku_backend/internals/features/hostel/rooms/dto"
	model "hostelku_backend/internals/features/hostel/rooms/model"
	helper "hostelku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/rooms
func (h *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
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
			return fiber.NewError(fiber.StatusConflict, "Room "+req.RoomBlock+"/"+req.RoomNumber+" already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create room")
	}

	return helper.JsonCreated(c, "Room created", dto.FromModel(*m))
}

/* ======================== LIST ======================== */
// GET /api/rooms?block=&vacant_only=&page=&per_page=
func (h *RoomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	base := h.DB.Model(&model.RoomModel{})
	if block := strings.TrimSpace(c.Query("block")); block != "" {
		base = base.Where("room_block = ?", block)
	}
	if c.QueryBool("vacant_only") {
		base = base.Where("room_occupied_count < room_capacity")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.RoomModel
	if err := base.
		Order("room_block ASC, room_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.RoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r))
	}
	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================== GET BY ID ======================== */
// GET /api/rooms/:id
func (h *RoomController) GetByID(c *fiber.Ctx) error {
	var row model.RoomModel
	if err := h.DB.Where("room_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PATCH /api/rooms/:id
func (h *RoomController) Update(c *fiber.Ctx) error {
	var row model.RoomModel
	if err := h.DB.Where("room_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&row)

	// capacity can never drop below current occupancy
	if row.RoomCapacity < row.RoomOccupiedCount {
		return fiber.NewError(fiber.StatusConflict,
			"Capacity cannot be lower than the current occupant count")
	}

	if err := h.DB.Save(&row).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Room number already taken in this block")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update room")
	}

	return helper.JsonUpdated(c, "Room updated", dto.FromModel(row))
}

/* ======================== DELETE ======================== */
// DELETE /api/rooms/:id — only empty rooms can be removed
func (h *RoomController) Delete(c *fiber.Ctx) error {
	var row model.RoomModel
	if err := h.DB.Where("room_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Room not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.RoomOccupiedCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Room still has occupants")
	}

	if err := h.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete room")
	}
	return helper.JsonDeleted(c, "Room deleted", fiber.Map{"room_id": row.RoomID})
}
