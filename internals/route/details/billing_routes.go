package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	billingController "hostelku_backend/internals/features/billing/controller"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

// BillingRoutes: electricity bills for staff, payment lifecycle for
// students. The gateway webhook is registered unauthenticated; the
// gateway carries no session and the handler trusts only what the
// status check confirms.
func BillingRoutes(app *fiber.App, db *gorm.DB) {
	bills := billingController.NewBillController(db)
	payments := billingController.NewPaymentController(db)

	/* ---------- staff: bills ---------- */
	billAPI := app.Group("/api/electricity/bills",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequirePermission(constants.PermElectricity, "Electricity"),
	)
	billAPI.Get("/", bills.List)
	billAPI.Get("/:id", bills.GetByID)

	billWrite := billAPI.Group("/", authMiddleware.RequireFullAccess(constants.PermElectricity))
	billWrite.Post("/", bills.Create)

	/* ---------- student: own bills & payments ---------- */
	// Per-route middleware below: /api/electricity/my-bills shares its
	// prefix with the staff bill group, and the webhook shares
	// /api/payments with the student payment routes. Prefix-scoped
	// group middleware would leak across them.
	requireLogin := authMiddleware.AuthMiddleware(db)
	studentOnly := authMiddleware.OnlyRoles("Only students can pay hostel bills", constants.RoleStudent)
	app.Get("/api/electricity/my-bills", requireLogin, studentOnly, bills.MyBills)
	app.Post("/api/payments/initiate", requireLogin, studentOnly, payments.Initiate)
	app.Get("/api/payments/status/:id", requireLogin, studentOnly, payments.Status)
	app.Post("/api/payments/verify/:id", requireLogin, studentOnly, payments.Verify)
	app.Delete("/api/payments/cancel/:id", requireLogin, studentOnly, payments.Cancel)

	/* ---------- gateway webhook (public) ---------- */
	app.Post("/api/payments/notification", payments.Notification)
}
