package routers

import (
	"video-mcq/internal/delivery/http/handlers"
	infra_repo "video-mcq/internal/infrastructure/repositories"
	"video-mcq/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMCQRoutes(app *fiber.App, database *gorm.DB) {
	mcqRepo := infra_repo.NewMCQRepository(database)
	mcqService := usecases.NewMCQService(mcqRepo)
	mcqHandler := handlers.NewMCQHandler(mcqService)

	api := app.Group("/api/mcqs")
	api.Post("/", mcqHandler.QueryMCQs)
	api.Put("/", mcqHandler.EditMCQ)
}
