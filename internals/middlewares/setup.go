package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"hostelku_backend/internals/middlewares/logger"
)

// SetupMiddlewares mounts the app-wide stack. Order matters: recover first so
// it wraps everything, then CORS, logging and the global limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
