package routers

import (
	"video-mcq/internal/delivery/http/handlers"
	"video-mcq/internal/infrastructure/notify"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App, registry *notify.Registry) {
	notificationHandler := handlers.NewNotificationHandler(registry)

	app.Use("/notifications", notificationHandler.Upgrade)
	app.Get("/notifications", notificationHandler.Serve())
}
