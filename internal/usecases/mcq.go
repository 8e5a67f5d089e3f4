package usecases

import (
	"encoding/json"
	"fmt"

	"video-mcq/internal/domain/dto"
	"video-mcq/internal/domain/entities"
	"video-mcq/internal/domain/repositories"
	"video-mcq/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MCQService interface {
	GetByVideoID(videoID string) (*dto.MCQQueryResponse, error)
	Edit(req *dto.MCQEditRequestDTO) (*dto.MCQEditResponse, error)
}

type mcqService struct {
	mcqs repositories.MCQRepository
}

func NewMCQService(mcqs repositories.MCQRepository) MCQService {
	return &mcqService{mcqs: mcqs}
}

// GetByVideoID returns every MCQ for one video in segment-index order,
// start/end converted from seconds to minutes for the quiz viewer.
func (s *mcqService) GetByVideoID(videoID string) (*dto.MCQQueryResponse, error) {
	if videoID == "" {
		return nil, errors.ErrMissingField(fmt.Errorf("videoId parameter is required"))
	}

	id, err := uuid.Parse(videoID)
	if err != nil {
		return nil, errors.ErrNotFound(fmt.Errorf("malformed video id %q: %w", videoID, err))
	}

	mcqs, err := s.mcqs.FindByVideoID(id)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	if len(mcqs) == 0 {
		return nil, errors.ErrNotFound(fmt.Errorf("no MCQs found for video %s", videoID))
	}

	result := make([]dto.MCQItemDTO, 0, len(mcqs))
	for _, mcq := range mcqs {
		item, err := toMCQItem(&mcq)
		if err != nil {
			return nil, errors.ErrInternal(err)
		}
		item.Start /= 60
		item.End /= 60
		result = append(result, *item)
	}

	return &dto.MCQQueryResponse{Result: result}, nil
}

// Edit replaces question, options and answer of one MCQ. The answer
// must be a member of the replacement options; segment tagging and time
// range are not editable.
func (s *mcqService) Edit(req *dto.MCQEditRequestDTO) (*dto.MCQEditResponse, error) {
	if req.ID == "" || req.Question == "" || len(req.Options) == 0 || req.Answer == "" {
		return nil, errors.ErrMissingField(fmt.Errorf("missing required fields (_id, question, options, answer)"))
	}

	if !containsString(req.Options, req.Answer) {
		return nil, errors.ErrInvalidAnswer(fmt.Errorf("answer %q is not among the options", req.Answer))
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, errors.ErrNotFound(fmt.Errorf("malformed MCQ id %q: %w", req.ID, err))
	}

	mcq, err := s.mcqs.FindByID(id)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	if mcq == nil {
		return nil, errors.ErrNotFound(fmt.Errorf("MCQ %s does not exist", req.ID))
	}

	options, err := json.Marshal(req.Options)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	mcq.Question = req.Question
	mcq.Options = datatypes.JSON(options)
	mcq.Answer = req.Answer

	if err := s.mcqs.Update(mcq); err != nil {
		return nil, errors.ErrInternal(err)
	}

	item, err := toMCQItem(mcq)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return &dto.MCQEditResponse{Result: *item}, nil
}

// toMCQItem maps a record with start/end still in seconds.
func toMCQItem(mcq *entities.MCQ) (*dto.MCQItemDTO, error) {
	var options []string
	if len(mcq.Options) > 0 {
		if err := json.Unmarshal(mcq.Options, &options); err != nil {
			return nil, fmt.Errorf("options of MCQ %s could not be decoded: %w", mcq.ID, err)
		}
	}

	return &dto.MCQItemDTO{
		ID:           mcq.ID.String(),
		SegmentIndex: mcq.SegmentIndex,
		Start:        mcq.Start,
		End:          mcq.End,
		Question:     mcq.Question,
		Options:      options,
		Answer:       mcq.Answer,
	}, nil
}

func containsString(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
