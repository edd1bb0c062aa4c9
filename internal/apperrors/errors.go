package apperrors

import (
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeTranslationUnavailable = "TRANSLATION_UNAVAILABLE"
)

// AppError carries a user-facing message plus the HTTP status it maps to.
type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// 입력값 검증 실패 (이름 누락, 범위 밖 나이 등)
type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: http.StatusBadRequest,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type NotFoundError struct {
	*AppError
	Resource string
	ID       any
}

func NewNotFoundError(message, resource string, id any) *NotFoundError {
	return &NotFoundError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeNotFound,
			StatusCode: http.StatusNotFound,
			Context: map[string]any{
				"resource": resource,
				"id":       id,
			},
		},
		Resource: resource,
		ID:       id,
	}
}

// TranslationUnavailableError is reported by translation providers. It is always
// recovered by the localizer and never reaches a client.
type TranslationUnavailableError struct {
	*AppError
	Language string
}

func NewTranslationUnavailableError(message, language string, cause error) *TranslationUnavailableError {
	return &TranslationUnavailableError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeTranslationUnavailable,
			StatusCode: http.StatusServiceUnavailable,
			Context: map[string]any{
				"language": language,
			},
			Cause: cause,
		},
		Language: language,
	}
}
