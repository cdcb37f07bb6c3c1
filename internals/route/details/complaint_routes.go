package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	complaintController "hostelku_backend/internals/features/complaints/controller"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

func ComplaintRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := complaintController.NewComplaintController(db)

	requireLogin := authMiddleware.AuthMiddleware(db)
	studentOnly := authMiddleware.OnlyRoles("Only students can file complaints", constants.RoleStudent)
	canView := authMiddleware.RequirePermission(constants.PermComplaints, "Complaints")
	canResolve := authMiddleware.RequireFullAccess(constants.PermComplaints)

	app.Post("/api/complaints", requireLogin, studentOnly, ctrl.Create)
	app.Get("/api/complaints/my", requireLogin, studentOnly, ctrl.My)

	app.Get("/api/complaints", requireLogin, canView, ctrl.List)
	app.Post("/api/complaints/resolve/:id", requireLogin, canView, canResolve, ctrl.Resolve)
}
