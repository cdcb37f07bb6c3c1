package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "hostelku_backend/internals/features/users/auth/controller"
	userController "hostelku_backend/internals/features/users/user/controller"
	"hostelku_backend/internals/middlewares"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	profile := userController.NewUserProfileController(db)

	api := app.Group("/api/auth")

	// Public
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	api.Post("/refresh-token", ctrl.RefreshToken)

	// Authenticated
	private := api.Group("/", authMiddleware.AuthMiddleware(db))
	private.Get("/me", ctrl.Me)
	private.Post("/logout", ctrl.Logout)
	private.Post("/change-password", ctrl.ChangePassword)
	private.Post("/photo", profile.UploadPhoto)
	private.Get("/photo/:id", profile.GetPhoto)
}
