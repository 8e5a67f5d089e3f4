package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	AMQP       AMQPConfig
	Services   ServicesConfig
	Processing ProcessingConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	ChunksDir     string
	UploadsDir    string
	VideosDir     string
	ThumbnailsDir string
	TempDir       string
	MaxFileSize   int64 // bytes
	ChunkMaxAge   time.Duration
}

// StorageConfig selects where merged videos and thumbnails are kept.
// "local" writes under UploadsDir; "s3" syncs assets to a bucket.
type StorageConfig struct {
	Driver   string
	S3Bucket string
	S3Region string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host string
	Port string
}

type AMQPConfig struct {
	URL   string
	Queue string
}

type ServicesConfig struct {
	STTURL string
	MCQURL string
}

type ProcessingConfig struct {
	SegmentSeconds  float64
	MergeMaxRetries int
	MergeRetryDelay time.Duration
	FFmpegPath      string
	FFprobePath     string
}

func LoadConfig() *Config {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Upload: UploadConfig{
			ChunksDir:   getEnv("CHUNKS_DIR", "chunks"),
			UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),
			TempDir:     getEnv("SEGMENT_TEMP_DIR", "temp_segments"),
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 2048*1024*1024), // 2GB
			ChunkMaxAge: getEnvAsDuration("CHUNK_MAX_AGE", 24*time.Hour),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", "local"),
			S3Bucket: getEnv("S3_BUCKET", ""),
			S3Region: getEnv("S3_REGION", "eu-central-1"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "video_mcq"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		AMQP: AMQPConfig{
			URL:   getEnv("AMQP_URL", "amqp://localhost"),
			Queue: getEnv("AMQP_NOTIFICATION_QUEUE", "notifications"),
		},
		Services: ServicesConfig{
			STTURL: getEnv("STT_SERVICE_URL", "http://localhost:8000/api/v1/stt"),
			MCQURL: getEnv("MCQ_SERVICE_URL", "http://localhost:8000/api/v1/mcq"),
		},
		Processing: ProcessingConfig{
			SegmentSeconds:  getEnvAsFloat64("SEGMENT_SECONDS", 300),
			MergeMaxRetries: getEnvAsInt("MERGE_MAX_RETRIES", 5),
			MergeRetryDelay: getEnvAsDuration("MERGE_RETRY_DELAY", time.Second),
			FFmpegPath:      getEnv("FFMPEG_PATH", "ffmpeg"),
			FFprobePath:     getEnv("FFPROBE_PATH", "ffprobe"),
		},
	}

	config.Upload.VideosDir = filepath.Join(config.Upload.UploadsDir, "videos")
	config.Upload.ThumbnailsDir = filepath.Join(config.Upload.UploadsDir, "thumbnails")

	return config
}

// EnsureDirs creates the storage directories the upload flow writes to.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		c.Upload.ChunksDir,
		c.Upload.VideosDir,
		c.Upload.ThumbnailsDir,
		c.Upload.TempDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
