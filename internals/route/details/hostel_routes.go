package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	roomController "hostelku_backend/internals/features/hostel/rooms/controller"
	studentController "hostelku_backend/internals/features/hostel/students/controller"
	"hostelku_backend/internals/middlewares"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

// HostelRoutes: rooms, students and preregistration. Reads need the
// permission tag, writes additionally need full access on it.
func HostelRoutes(app *fiber.App, db *gorm.DB) {
	rooms := roomController.NewRoomController(db)
	students := studentController.NewStudentController(db)
	prereg := studentController.NewPreregistrationController(db)

	/* ---------- rooms ---------- */
	roomAPI := app.Group("/api/rooms",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermRoomManagement, "Room Management"),
	)
	roomAPI.Get("/", rooms.List)
	roomAPI.Get("/:id", rooms.GetByID)

	roomWrite := roomAPI.Group("/", authMiddleware.RequireFullAccess(constants.PermRoomManagement))
	roomWrite.Post("/", rooms.Create)
	roomWrite.Patch("/:id", rooms.Update)
	roomWrite.Delete("/:id", rooms.Delete)

	/* ---------- students ---------- */
	studentAPI := app.Group("/api/students",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermStudentManagement, "Student Management"),
	)
	studentAPI.Get("/", students.List)
	studentAPI.Get("/:id", students.GetByID)

	studentWrite := studentAPI.Group("/", authMiddleware.RequireFullAccess(constants.PermStudentManagement))
	studentWrite.Patch("/:id", students.Update)
	studentWrite.Post("/:id/allocate-room", students.AllocateRoom)
	studentWrite.Delete("/:id", students.Delete)

	/* ---------- preregistration ---------- */
	// Submission is public: applicants have no account yet.
	app.Post("/api/student/preregistrations", middlewares.PreregistrationRateLimiter(), prereg.Create)

	preregAPI := app.Group("/api/student/preregistrations",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermPreregistration, "Preregistration"),
	)
	preregAPI.Get("/", prereg.List)

	preregWrite := preregAPI.Group("/", authMiddleware.RequireFullAccess(constants.PermPreregistration))
	preregWrite.Post("/:id/approve", prereg.Approve)
	preregWrite.Post("/:id/reject", prereg.Reject)
}
