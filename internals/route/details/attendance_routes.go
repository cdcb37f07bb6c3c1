package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	attendanceController "hostelku_backend/internals/features/attendance/controller"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	api := app.Group("/api/attendance",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermAttendance, "Attendance"),
	)
	api.Get("/students", ctrl.Roster)
	api.Get("/date", ctrl.ByDate)
	api.Get("/range", ctrl.Range)

	write := api.Group("/", authMiddleware.RequireFullAccess(constants.PermAttendance))
	write.Post("/take", ctrl.Take)
}
