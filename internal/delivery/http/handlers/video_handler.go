package handlers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"video-mcq/internal/domain/dto"
	"video-mcq/internal/domain/repositories"
	"video-mcq/internal/usecases"
	apperrors "video-mcq/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService usecases.VideoService
	uploadsDir   string
	thumbs       repositories.StorageStrategy
}

func NewVideoHandler(videoService usecases.VideoService, uploadsDir string, thumbs repositories.StorageStrategy) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
		uploadsDir:   uploadsDir,
		thumbs:       thumbs,
	}
}

// ListVideos
//
// @Summary      List Videos
// @Description  Returns every uploaded video with streaming and thumbnail URLs
// @Tags         Video
// @Produce      json
// @Success      200  {object}  dto.VideoListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/files/videos [get]
func (h *VideoHandler) ListVideos(c *fiber.Ctx) error {
	response, err := h.videoService.ListVideos()
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(response)
}

// GetFile
//
// @Summary      Get File Details
// @Description  Returns the stored record for a single file
// @Tags         Video
// @Produce      json
// @Param        fileId  path      string true "File ID"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/files/{fileId} [get]
func (h *VideoHandler) GetFile(c *fiber.Ctx) error {
	file, err := h.videoService.GetFileByID(c.Params("fileId"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "File details fetched successfully",
		"data":    file,
	})
}

// DeleteVideo
//
// @Summary      Delete Video
// @Description  Removes a video, its thumbnail and all generated MCQs
// @Tags         Video
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DeleteVideoRequestDTO true "Video to delete"
// @Success      200      {object}  dto.MessageResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/files [delete]
func (h *VideoHandler) DeleteVideo(c *fiber.Ctx) error {
	var req dto.DeleteVideoRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}
	if req.FileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "fileId is required",
		})
	}

	if err := h.videoService.DeleteVideo(req.FileID); err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Video and associated data deleted successfully"})
}

// StreamVideo
//
// @Summary      Stream Video
// @Description  Serves the video file with HTTP range support
// @Tags         Video
// @Produce      octet-stream
// @Param        fileId  path      string true  "Video file ID"
// @Param        Range   header    string false "Byte range, e.g. bytes=0-"
// @Success      200
// @Success      206
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      416     {object}  dto.ErrorResponse
// @Router       /api/files/stream/{fileId} [get]
func (h *VideoHandler) StreamVideo(c *fiber.Ctx) error {
	file, err := h.videoService.GetFileByID(c.Params("fileId"))
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	absPath := filepath.Join(h.uploadsDir, filepath.FromSlash(file.FilePath))
	f, err := os.Open(absPath)
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrNotFound(err))
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return apperrors.HandleError(c, apperrors.ErrInternal(err))
	}
	size := info.Size()

	c.Set(fiber.HeaderAcceptRanges, "bytes")
	c.Set(fiber.HeaderContentType, file.MimeType)

	rangeHeader := c.Get(fiber.HeaderRange)
	if rangeHeader == "" {
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(size, 10))
		return c.SendStream(f, int(size))
	}

	start, end, err := parseByteRange(rangeHeader, size)
	if err != nil {
		f.Close()
		c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes */%d", size))
		return apperrors.HandleError(c, apperrors.ErrRangeNotSatisfiable(err))
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		f.Close()
		return apperrors.HandleError(c, apperrors.ErrInternal(err))
	}

	length := end - start + 1
	c.Status(fiber.StatusPartialContent)
	c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(length, 10))
	return c.SendStream(&rangeReader{Reader: io.LimitReader(f, length), file: f}, int(length))
}

// rangeReader keeps the file handle closable once the response body is
// consumed; a bare LimitReader would leak it.
type rangeReader struct {
	io.Reader
	file *os.File
}

func (r *rangeReader) Close() error {
	return r.file.Close()
}

// ServeThumbnail
//
// @Summary      Serve Thumbnail
// @Description  Serves a stored thumbnail image by file name
// @Tags         Video
// @Produce      octet-stream
// @Param        filename  path  string true "Thumbnail file name"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/thumbnails/{filename} [get]
func (h *VideoHandler) ServeThumbnail(c *fiber.Ctx) error {
	name := filepath.Base(c.Params("filename"))
	rc, err := h.thumbs.Open("thumbnails/" + name)
	if err != nil {
		return apperrors.HandleError(c, apperrors.ErrNotFound(err))
	}
	c.Type(strings.TrimPrefix(filepath.Ext(name), "."))
	return c.SendStream(rc)
}

// parseByteRange parses a "bytes=start-end" header against the file
// size. A start at or past the end of the file is not satisfiable.
func parseByteRange(header string, size int64) (int64, int64, error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, fmt.Errorf("unsupported range unit in %q", header)
	}

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 || parts[0] == "" {
		return 0, 0, fmt.Errorf("malformed range %q", header)
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("malformed range start in %q", header)
	}
	if start >= size {
		return 0, 0, fmt.Errorf("range start %d beyond file size %d", start, size)
	}

	end := size - 1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, fmt.Errorf("malformed range end in %q", header)
		}
		if end >= size {
			end = size - 1
		}
	}

	return start, end, nil
}
