package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/constants"
	engagementController "hostelku_backend/internals/features/engagement/controller"
	authMiddleware "hostelku_backend/internals/middlewares/auth"
)

func EngagementRoutes(app *fiber.App, db *gorm.DB) {
	polls := engagementController.NewPollController(db)
	announcements := engagementController.NewAnnouncementController(db)

	requireLogin := authMiddleware.AuthMiddleware(db)
	studentOnly := authMiddleware.OnlyRoles("Only students can vote", constants.RoleStudent)
	canRunPolls := authMiddleware.RequirePermission(constants.PermPolls, "Polls")
	canEditPolls := authMiddleware.RequireFullAccess(constants.PermPolls)
	canAnnounce := authMiddleware.RequirePermission(constants.PermAnnouncements, "Announcements")
	canEditAnnouncements := authMiddleware.RequireFullAccess(constants.PermAnnouncements)

	/* ---------- polls ---------- */
	app.Get("/api/polls", requireLogin, polls.List)
	app.Get("/api/polls/results/:id", requireLogin, polls.Results)
	app.Post("/api/polls/vote/:id", requireLogin, studentOnly, polls.Vote)

	app.Post("/api/polls", requireLogin, canRunPolls, canEditPolls, polls.Create)
	app.Post("/api/polls/close/:id", requireLogin, canRunPolls, canEditPolls, polls.Close)
	app.Delete("/api/polls/:id", requireLogin, canRunPolls, canEditPolls, polls.Delete)

	/* ---------- announcements ---------- */
	app.Get("/api/announcements", requireLogin, announcements.List)

	app.Post("/api/announcements", requireLogin, canAnnounce, canEditAnnouncements, announcements.Create)
	app.Put("/api/announcements/:id", requireLogin, canAnnounce, canEditAnnouncements, announcements.Update)
	app.Delete("/api/announcements/:id", requireLogin, canAnnounce, canEditAnnouncements, announcements.Delete)
}
