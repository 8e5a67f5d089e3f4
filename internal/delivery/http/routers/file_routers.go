package routers

import (
	"log"

	"video-mcq/internal/delivery/http/handlers"
	domain "video-mcq/internal/domain/repositories"
	"video-mcq/internal/infrastructure/notify"
	"video-mcq/internal/infrastructure/queue"
	infra_repo "video-mcq/internal/infrastructure/repositories"
	"video-mcq/internal/infrastructure/storage"
	"video-mcq/internal/usecases"
	"video-mcq/pkg/config"
	"video-mcq/pkg/retry"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SetupFileRoutes wires the upload, listing, streaming and delete
// endpoints, plus the cron job that sweeps stale chunk files.
func SetupFileRoutes(app *fiber.App, cfg *config.Config, database *gorm.DB, rdb *redis.Client, notifier notify.Publisher) {
	chunkRepo := infra_repo.NewChunkRepository(cfg.Upload.ChunksDir, cfg.Upload.VideosDir, retry.Policy{
		MaxAttempts: cfg.Processing.MergeMaxRetries,
		Delay:       cfg.Processing.MergeRetryDelay,
	})
	fileRepo := infra_repo.NewFileRepository(database)
	mcqRepo := infra_repo.NewMCQRepository(database)
	jobQueue := queue.NewRedisQueue(rdb)

	// Video binaries always live on local disk; only thumbnails follow
	// the configured storage driver.
	localStorage := storage.NewLocalStorage(cfg.Upload.UploadsDir)
	var thumbStorage domain.StorageStrategy = localStorage
	if cfg.Storage.Driver == "s3" {
		s3Storage, err := storage.NewS3Storage(cfg.Storage.S3Bucket, cfg.Storage.S3Region)
		if err != nil {
			log.Fatalf("S3 storage could not be initialized: %v", err)
		}
		thumbStorage = s3Storage
	}

	uploadService := usecases.NewUploadService(chunkRepo, fileRepo, thumbStorage, jobQueue, notifier)
	videoService := usecases.NewVideoService(fileRepo, mcqRepo, localStorage, thumbStorage)

	cleanupUC := usecases.NewCleanupService(chunkRepo, cfg.Upload.ChunkMaxAge)
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc("0 */5 * * * *", cleanupUC.Run); err != nil {
		log.Fatalf("cleanup cron could not be scheduled: %v", err)
	}
	c.Start()

	uploadHandler := handlers.NewUploadHandler(uploadService)
	videoHandler := handlers.NewVideoHandler(videoService, cfg.Upload.UploadsDir, thumbStorage)

	api := app.Group("/api/files")
	api.Post("/", uploadHandler.UploadChunk)
	api.Post("/thumbnail", uploadHandler.UploadThumbnail)
	api.Get("/videos", videoHandler.ListVideos)
	api.Delete("/", videoHandler.DeleteVideo)
	api.Get("/stream/:fileId", videoHandler.StreamVideo)
	api.Get("/thumbnails/:filename", videoHandler.ServeThumbnail)
	api.Get("/:fileId", videoHandler.GetFile)
}
