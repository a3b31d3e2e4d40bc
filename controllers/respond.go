package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonwoo-kim-dev/pixelforge/apperrors"
)

// APIResponse is the JSON envelope every endpoint answers with.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func sendResponse(c *gin.Context, status int, message string, data interface{}, err interface{}) {
	c.JSON(status, APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
		Error:   err,
	})
}

// sendError translates a service error into the HTTP response. Typed errors
// carry their own status and optional code; anything else degrades to a
// generic 500 with no detail leakage.
func sendError(c *gin.Context, message string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		var detail interface{} = appErr.Message
		if appErr.Code != "" {
			detail = map[string]string{
				"code":    appErr.Code,
				"message": appErr.Message,
			}
		}
		sendResponse(c, appErr.Status, message, nil, detail)
		return
	}

	sendResponse(c, http.StatusInternalServerError, message, nil, "Internal server error")
}
