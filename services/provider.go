package services

import (
	"context"
	"net/http"

	"github.com/yeonwoo-kim-dev/pixelforge/apperrors"
)

// ProviderResult is what an image provider hands back: either a remote URL to
// download or an inline base64 payload, plus the size that was rendered.
type ProviderResult struct {
	URL  string
	B64  string
	Size string
}

// ImageProvider generates one image for a prompt.
type ImageProvider interface {
	Generate(ctx context.Context, model, prompt string) (*ProviderResult, error)
}

func providerError(message string) *apperrors.AppError {
	return apperrors.New(message, http.StatusBadGateway)
}
