package handlers

import (
	"video-mcq/internal/domain/dto"
	"video-mcq/internal/usecases"
	apperrors "video-mcq/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService usecases.UploadService
}

func NewUploadHandler(uploadService usecases.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadChunk
//
// @Summary      Upload Video Chunk
// @Description  Uploads one chunk of a lecture video; the final chunk triggers the merge and queues MCQ generation
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        originalname       formData  string true  "Original file name"
// @Param        chunk              formData  string true  "Declared chunk index"
// @Param        totalChunks        formData  string true  "Total chunk count"
// @Param        title              formData  string false "Video title"
// @Param        noOfMCQs           formData  string false "MCQs per segment"
// @Param        durationInSeconds  formData  string false "Video duration in seconds"
// @Param        thumbnailFileId    formData  string false "Previously uploaded thumbnail ID"
// @Param        video              formData  file   true  "Chunk payload"
// @Success      200                {object}  dto.UploadChunkResponse
// @Failure      400                {object}  dto.ErrorResponse
// @Failure      500                {object}  dto.ErrorResponse
// @Router       /api/files [post]
func (h *UploadHandler) UploadChunk(c *fiber.Ctx) error {
	req := &dto.UploadChunkRequestDTO{
		OriginalName:      c.FormValue("originalname"),
		Chunk:             c.FormValue("chunk"),
		TotalChunks:       c.FormValue("totalChunks"),
		Title:             c.FormValue("title"),
		NoOfMCQs:          c.FormValue("noOfMCQs"),
		DurationInSeconds: c.FormValue("durationInSeconds"),
		ThumbnailFileID:   c.FormValue("thumbnailFileId"),
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "chunk file is missing",
		})
	}

	response, err := h.uploadService.UploadChunk(req, fileHeader)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(response)
}

// UploadThumbnail
//
// @Summary      Upload Thumbnail
// @Description  Uploads a thumbnail image and returns its ID for use in a later video upload
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        title  formData  string false "Thumbnail title"
// @Param        thumbnail  formData  file   true  "Image file"
// @Success      200    {object}  dto.UploadThumbnailResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/files/thumbnail [post]
func (h *UploadHandler) UploadThumbnail(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "image file is missing",
		})
	}

	response, err := h.uploadService.UploadThumbnail(c.FormValue("title"), fileHeader)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(response)
}
