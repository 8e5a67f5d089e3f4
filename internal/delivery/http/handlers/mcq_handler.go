package handlers

import (
	"video-mcq/internal/domain/dto"
	"video-mcq/internal/usecases"
	apperrors "video-mcq/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type MCQHandler struct {
	mcqService usecases.MCQService
}

func NewMCQHandler(mcqService usecases.MCQService) *MCQHandler {
	return &MCQHandler{
		mcqService: mcqService,
	}
}

// QueryMCQs
//
// @Summary      Query MCQs
// @Description  Returns all MCQs generated for a video, ordered by segment
// @Tags         MCQ
// @Accept       json
// @Produce      json
// @Param        request  body      dto.MCQQueryRequestDTO true "Video to query"
// @Success      200      {object}  dto.MCQQueryResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/mcqs [post]
func (h *MCQHandler) QueryMCQs(c *fiber.Ctx) error {
	var req dto.MCQQueryRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	response, err := h.mcqService.GetByVideoID(req.VideoID)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(response)
}

// EditMCQ
//
// @Summary      Edit MCQ
// @Description  Replaces question, options and answer of one MCQ
// @Tags         MCQ
// @Accept       json
// @Produce      json
// @Param        request  body      dto.MCQEditRequestDTO true "Updated MCQ"
// @Success      200      {object}  dto.MCQEditResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/mcqs [put]
func (h *MCQHandler) EditMCQ(c *fiber.Ctx) error {
	var req dto.MCQEditRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	}

	response, err := h.mcqService.Edit(&req)
	if err != nil {
		return apperrors.HandleError(c, err)
	}

	return c.JSON(response)
}
