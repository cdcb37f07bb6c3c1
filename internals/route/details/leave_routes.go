package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	leaveController "hostelku_backend/internals/features/leave/controller"
	"hostelku_backend/internals/middlewares"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

// LeaveRoutes: leave/outpass lifecycle plus the public gate endpoints.
// The scan endpoints share the /api/leave prefix with authenticated
// routes, so middleware is attached per route, never on the prefix.
func LeaveRoutes(app *fiber.App, db *gorm.DB) {
	leaves := leaveController.NewLeaveController(db)
	scans := leaveController.NewScanController(db)

	requireLogin := authMiddleware.AuthMiddleware(db)
	studentOnly := authMiddleware.OnlyRoles("Only students can request leave", constants.RoleStudent)
	canReview := authMiddleware.RequirePermission(constants.PermLeaveManagement, "Leave Management")
	canDecide := authMiddleware.RequireFullAccess(constants.PermLeaveManagement)

	/* ---------- public gate endpoints ---------- */
	// Scanned by gate devices, no session. Rate limited instead.
	app.Post("/api/leave/qr/:id", middlewares.ScanRateLimiter(), scans.ScanOutgoing)
	app.Post("/api/leave/incoming-qr/:id", middlewares.ScanRateLimiter(), scans.ScanIncoming)

	/* ---------- student ---------- */
	app.Post("/api/leave/create", requireLogin, studentOnly, leaves.CreateLeave)
	app.Get("/api/leave/my-requests", requireLogin, studentOnly, leaves.MyLeaveRequests)
	app.Post("/api/outpass/create", requireLogin, studentOnly, leaves.CreateOutpass)
	app.Get("/api/outpass/my-requests", requireLogin, studentOnly, leaves.MyOutpassRequests)
	app.Post("/api/outpass/qr-view/:id", requireLogin, studentOnly, leaves.QRView)

	/* ---------- warden review ---------- */
	app.Get("/api/leave/requests", requireLogin, canReview, leaves.List)
	app.Post("/api/leave/approve/:id", requireLogin, canReview, canDecide, leaves.Approve)
	app.Post("/api/leave/reject/:id", requireLogin, canReview, canDecide, leaves.Reject)

	/* ---------- public record fetch (after the named routes) ---------- */
	app.Get("/api/leave/:id", scans.GetByID)
}
