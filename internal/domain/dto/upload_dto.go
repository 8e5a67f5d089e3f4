package dto

type UploadChunkRequestDTO struct {
	OriginalName      string `json:"originalname" form:"originalname"`
	Chunk             string `json:"chunk" form:"chunk"`
	TotalChunks       string `json:"totalChunks" form:"totalChunks"`
	Title             string `json:"title" form:"title"`
	NoOfMCQs          string `json:"noOfMCQs" form:"noOfMCQs"`
	DurationInSeconds string `json:"durationInSeconds" form:"durationInSeconds"`
	ThumbnailFileID   string `json:"thumbnailFileId" form:"thumbnailFileId"`
}

type UploadChunkResponse struct {
	Message string `json:"message"`
	FileID  string `json:"fileId,omitempty"`
}

type UploadThumbnailResponse struct {
	Message  string `json:"message"`
	FileID   string `json:"fileId"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
