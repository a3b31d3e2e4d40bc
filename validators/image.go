package validators

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required" binding:"required"`
	Model  string `json:"model"`
}

func ValidateGenerateImageRequest(c *gin.Context) (*GenerateImageRequest, bool) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A prompt is required",
		})
		return nil, false
	}

	if errs := Validate(req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, ValidationResponse{
			Errors: errs,
		})
		return nil, false
	}

	return &req, true
}
