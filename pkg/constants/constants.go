package constants

const (
	StatusOK        = "ok"
	StatusQueued    = "queued"
	StatusCompleted = "completed"
	StatusFailed    = "failed"

	FileTypeVideo = "video"
	FileTypeImage = "image"

	JobQueueKey = "mcq_jobs"
)
