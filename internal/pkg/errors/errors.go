package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails возвращает копию ошибки с деталями, исходная переменная не меняется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// FromStatus подбирает предопределённую ошибку по HTTP статусу
func FromStatus(status int, message string) *AppError {
	var base *AppError
	switch status {
	case ErrNotFound.StatusCode:
		base = ErrNotFound
	case ErrMethodNotAllowed.StatusCode:
		base = ErrMethodNotAllowed
	case ErrBadRequest.StatusCode:
		base = ErrBadRequest
	default:
		return New(ErrInternalServer.Code, message, status)
	}
	if message == "" {
		return base
	}
	return New(base.Code, message, base.StatusCode)
}
