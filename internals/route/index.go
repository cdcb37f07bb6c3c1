package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "hostelku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	routeDetails.AdminRoutes(app, db)

	log.Println("[INFO] Setting up HostelRoutes...")
	routeDetails.HostelRoutes(app, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendanceRoutes(app, db)

	log.Println("[INFO] Setting up BillingRoutes...")
	routeDetails.BillingRoutes(app, db)

	log.Println("[INFO] Setting up LeaveRoutes...")
	routeDetails.LeaveRoutes(app, db)

	log.Println("[INFO] Setting up MenuRoutes...")
	routeDetails.MenuRoutes(app, db)

	log.Println("[INFO] Setting up ComplaintRoutes...")
	routeDetails.ComplaintRoutes(app, db)

	log.Println("[INFO] Setting up EngagementRoutes...")
	routeDetails.EngagementRoutes(app, db)

	BaseRoutes(app, db)
}
