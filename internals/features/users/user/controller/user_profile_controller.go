package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "hostelku_backend/internals/features/users/user/model"
	helper "hostelku_backend/internals/helpers"
)

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// POST /api/users/profile-photo — multipart upload, converted to WebP before
// storage so every stored photo has a bounded size.
func (h *UserProfileController) UploadPhoto(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "photo file is required")
	}
	if fileHeader.Size > 5*1024*1024 {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "photo must be under 5MB")
	}

	webpBytes, err := helper.ConvertProfilePhotoToWebP(fileHeader)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("profile_photo", webpBytes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store photo")
	}

	return helper.JsonUpdated(c, "Profile photo updated", fiber.Map{
		"size_bytes": len(webpBytes),
	})
}

// GET /api/users/:id/photo
func (h *UserProfileController) GetPhoto(c *fiber.Ctx) error {
	var row struct {
		ProfilePhoto []byte
	}
	if err := h.DB.Model(&model.UserModel{}).
		Select("profile_photo").
		Where("id = ?", c.Params("id")).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(row.ProfilePhoto) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No profile photo")
	}

	c.Set("Content-Type", "image/webp")
	c.Set("Cache-Control", "private, max-age=3600")
	return c.Send(row.ProfilePhoto)
}
