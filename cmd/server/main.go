package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-mcq/docs"

	"video-mcq/pkg/config"
	consts "video-mcq/pkg/constants"

	"video-mcq/internal/delivery/http/routers"
	"video-mcq/internal/infrastructure/db"
	"video-mcq/internal/infrastructure/notify"

	_ "video-mcq/migrations"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatalf("sql.DB handle could not be obtained: %v", err)
		}
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	}

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("storage directories could not be created: %v", err)
	}

	notifier, err := notify.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		log.Fatalf("notification publisher could not be created: %v", err)
	}
	defer notifier.Close()

	registry := notify.NewRegistry()
	consumer, err := notify.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Queue, registry)
	if err != nil {
		log.Fatalf("notification consumer could not be created: %v", err)
	}
	defer consumer.Close()

	go func() {
		if err := consumer.Run(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	routers.SetupFileRoutes(app, cfg, database, rdb, notifier)
	routers.SetupMCQRoutes(app, database)
	routers.SetupNotificationRoutes(app, registry)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server could not be started: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server could not be shut down cleanly: %v", err)
	}
	log.Println("Server stopped")
}
