package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrNotFound = func(err error) *AppError {
		return &AppError{Code: "not_found", Message: "Record not found", Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: "internal_error", Message: "Internal server error", Err: err}
	}
	ErrMissingField = func(err error) *AppError {
		return &AppError{Code: "missing_field", Message: "Missing required field", Err: err}
	}
	ErrInvalidFileType = func(err error) *AppError {
		return &AppError{Code: "invalid_file_type", Message: "Unsupported file type", Err: err}
	}
	ErrInvalidChunk = func(err error) *AppError {
		return &AppError{Code: "invalid_chunk", Message: "Invalid chunk payload", Err: err}
	}
	ErrChunkNotSaved = func(err error) *AppError {
		return &AppError{Code: "chunk_not_saved", Message: "Chunk could not be saved", Err: err}
	}
	ErrMergeFailed = func(err error) *AppError {
		return &AppError{Code: "merge_failed", Message: "Chunk merge failed", Err: err}
	}
	ErrInvalidAnswer = func(err error) *AppError {
		return &AppError{Code: "invalid_answer", Message: "Answer must be one of the options", Err: err}
	}
	ErrRangeNotSatisfiable = func(err error) *AppError {
		return &AppError{Code: "range_not_satisfiable", Message: "Requested range not satisfiable", Err: err}
	}
)
