package dto

import "time"

type VideoListItemDTO struct {
	VideoFileName     string    `json:"videoFileName"`
	ThumbnailURL      *string   `json:"thumbnailUrl"`
	FileID            string    `json:"fileId"`
	VideoURL          string    `json:"videoUrl"`
	DurationInSeconds *float64  `json:"durationInSeconds"`
	UploadedAt        time.Time `json:"uploadedAt"`
}

type VideoListResponse struct {
	Result []VideoListItemDTO `json:"result"`
}

type DeleteVideoRequestDTO struct {
	FileID string `json:"fileId" form:"fileId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
