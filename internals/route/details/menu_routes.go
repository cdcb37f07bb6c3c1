package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	menuController "hostelku_backend/internals/features/menu/controller"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

func MenuRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := menuController.NewMenuController(db)

	requireLogin := authMiddleware.AuthMiddleware(db)
	canManage := authMiddleware.RequirePermission(constants.PermMenuManagement, "Menu Management")
	canEdit := authMiddleware.RequireFullAccess(constants.PermMenuManagement)
	studentOnly := authMiddleware.OnlyRoles("Only students rate the menu", constants.RoleStudent)

	// Everyone logged in sees the menu.
	app.Get("/api/menu", requireLogin, ctrl.List)

	app.Post("/api/menu/rate", requireLogin, studentOnly, ctrl.Rate)

	app.Get("/api/menu/stats", requireLogin, canManage, ctrl.Stats)
	app.Put("/api/menu", requireLogin, canManage, canEdit, ctrl.Upsert)
	app.Delete("/api/menu/:id", requireLogin, canManage, canEdit, ctrl.Delete)
	app.Post("/api/menu/notify", requireLogin, canManage, canEdit, ctrl.Notify)
}
