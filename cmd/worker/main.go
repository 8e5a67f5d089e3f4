package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"video-mcq/internal/infrastructure/clients"
	"video-mcq/internal/infrastructure/db"
	"video-mcq/internal/infrastructure/media"
	"video-mcq/internal/infrastructure/notify"
	"video-mcq/internal/infrastructure/queue"
	infra_repo "video-mcq/internal/infrastructure/repositories"
	"video-mcq/internal/usecases"
	"video-mcq/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
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
	// The worker may start before the server has run its migrations.
	if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	notifier, err := notify.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		log.Fatalf("notification publisher could not be created: %v", err)
	}
	defer notifier.Close()

	runner := media.NewCommandRunner()
	processor := usecases.NewSegmentProcessor(
		infra_repo.NewMCQRepository(database),
		media.NewFFProber(cfg.Processing.FFprobePath, runner),
		media.NewFFmpegExtractor(cfg.Processing.FFmpegPath, runner),
		clients.NewSTTClient(cfg.Services.STTURL),
		clients.NewMCQClient(cfg.Services.MCQURL),
		notifier,
		cfg.Upload.TempDir,
		cfg.Processing.SegmentSeconds,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Print("Shutdown signal received, stopping worker...")
		cancel()
	}()

	log.Printf("Worker consuming from %s", cfg.Redis.Host)
	queue.NewRedisQueue(rdb).Consume(ctx, processor.Run)
	log.Println("Worker stopped")
}
