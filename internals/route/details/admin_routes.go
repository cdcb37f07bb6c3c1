package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	userController "hostelku_backend/internals/features/users/user/controller"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

// AdminRoutes: staff-account management. Only full admins (and the
// super admin) may mint or edit staff accounts.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewAdminManagementController(db)

	api := app.Group("/api/admin-management",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRole(constants.RoleAdmin, "Only administrators can manage staff accounts"),
	)

	api.Post("/", ctrl.Create)
	api.Get("/", ctrl.List)
	api.Get("/courses", ctrl.ListCourses)
	api.Get("/:id", ctrl.GetByID)
	api.Put("/:id", ctrl.Update)
	api.Delete("/:id", ctrl.Delete)
}
