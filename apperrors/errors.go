package apperrors

import "net/http"

// Error codes attached to auth failures so clients can branch on them.
const (
	CodeInvalidPassword     = "INVALID_PASSWORD"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeNoAccessToken       = "NO_ACCESS_TOKEN"
	CodeInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
	CodeUserNotFound        = "USER_NOT_FOUND"
)

// AppError is the single error type services return. Controllers translate it
// into an HTTP status and JSON body at the route boundary.
type AppError struct {
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(message string, status int) *AppError {
	return &AppError{Message: message, Status: status}
}

func WithCode(message string, status int, code string) *AppError {
	return &AppError{Message: message, Status: status, Code: code}
}

func BadRequest(message string) *AppError {
	return New(message, http.StatusBadRequest)
}

func Conflict(message string) *AppError {
	return New(message, http.StatusConflict)
}

func NotFound(message string) *AppError {
	return New(message, http.StatusNotFound)
}

func Internal(message string) *AppError {
	return New(message, http.StatusInternalServerError)
}
