package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userModel "hostelku_backend/internals/features/users/user/model"
	helpers "hostelku_backend/internals/helpers"
)

// POST /api/auth/change-password
// Clears requires_password_change, which is the only way out of the forced
// reset state the auth middleware enforces.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(strings.TrimSpace(input.NewPassword)) < 8 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "New password must be at least 8 characters")
	}

	var user userModel.UserModel
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Old password is incorrect")
	}
	if input.OldPassword == input.NewPassword {
		return helpers.JsonError(c, fiber.StatusBadRequest, "New password must differ from the old one")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	updates := map[string]interface{}{
		"password":                 string(hashed),
		"requires_password_change": false,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonOK(c, "Password changed", fiber.Map{
		"requires_password_change": false,
	})
}
