package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yeonwoo-kim-dev/pixelforge/apperrors"
	"github.com/yeonwoo-kim-dev/pixelforge/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// DefaultModel is used when the request does not name one.
	DefaultModel = "dall-e-3"

	// ModelStableDiffusion routes generation to the Stable Diffusion WebUI.
	ModelStableDiffusion = "stable-diffusion"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

var dataURLPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// ImageService generates images through an external provider, persists them
// to the upload directory and the database, and answers gallery queries.
type ImageService struct {
	db        *gorm.DB
	openai    ImageProvider
	sd        ImageProvider
	uploadDir string
	client    *http.Client
}

func NewImageService(db *gorm.DB, openai, sd ImageProvider, uploadDir string) *ImageService {
	return &ImageService{
		db:        db,
		openai:    openai,
		sd:        sd,
		uploadDir: uploadDir,
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ImageOwner is the slice of the user embedded in gallery responses.
type ImageOwner struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
}

type ImageResponse struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"userId"`
	Prompt    string      `json:"prompt"`
	ImageURL  string      `json:"imageUrl"`
	Model     string      `json:"model"`
	Size      string      `json:"size"`
	CreatedAt time.Time   `json:"createdAt"`
	User      *ImageOwner `json:"user,omitempty"`
}

// GalleryPage is one page of the public gallery plus pagination metadata.
type GalleryPage struct {
	Images      []ImageResponse `json:"images"`
	TotalCount  int64           `json:"totalCount"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	HasNextPage bool            `json:"hasNextPage"`
	HasPrevPage bool            `json:"hasPrevPage"`
}

// Generate runs the full generation flow: provider call, file write, database
// row. It returns the API-relative path of the stored image. Once provider
// output is in hand, persistence no longer depends on the request context so
// a client disconnect cannot leave a file without a row.
func (s *ImageService) Generate(ctx context.Context, prompt, model string, userID uint) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperrors.BadRequest("A prompt is required")
	}
	if model == "" {
		model = DefaultModel
	}

	provider, err := s.providerFor(model)
	if err != nil {
		return "", err
	}

	result, err := provider.Generate(ctx, model, prompt)
	if err != nil {
		return "", err
	}

	imagePath, err := s.saveToFileSystem(result, userID)
	if err != nil {
		return "", err
	}

	image := models.GeneratedImage{
		UserID:   userID,
		Prompt:   prompt,
		ImageURL: imagePath,
		Model:    model,
		Size:     result.Size,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return "", apperrors.Internal("Failed to save image record")
	}

	return imagePath, nil
}

func (s *ImageService) providerFor(model string) (ImageProvider, error) {
	if model == ModelStableDiffusion {
		if s.sd == nil {
			return nil, apperrors.BadRequest("Stable Diffusion is not configured")
		}
		return s.sd, nil
	}
	if s.openai == nil {
		return nil, apperrors.Internal("Image provider is not configured")
	}
	return s.openai, nil
}

// saveToFileSystem writes the provider output under
// <uploadDir>/images/<userID>/<unixmilli>_<random>.png and returns the
// API-relative serving path.
func (s *ImageService) saveToFileSystem(result *ProviderResult, userID uint) (string, error) {
	data, err := s.imageBytes(result)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(s.uploadDir, "images", fmt.Sprint(userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Internal("Failed to save image file")
	}

	fileName := fmt.Sprintf("%d_%s.png", time.Now().UnixMilli(), uuid.NewString())
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", apperrors.Internal("Failed to save image file")
	}

	return fmt.Sprintf("/api/uploads/images/%d/%s", userID, fileName), nil
}

func (s *ImageService) imageBytes(result *ProviderResult) ([]byte, error) {
	if result.URL != "" {
		resp, err := s.client.Get(result.URL)
		if err != nil {
			return nil, apperrors.Internal("Failed to download generated image")
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, apperrors.Internal("Failed to download generated image")
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, apperrors.Internal("Failed to download generated image")
		}
		return data, nil
	}

	payload := dataURLPrefix.ReplaceAllString(result.B64, "")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.Internal("Failed to decode generated image")
	}
	return data, nil
}

// AllImages returns one page of the gallery, newest first, with the owner
// nickname embedded. Page and limit are clamped rather than rejected. The
// count and the page fetch run concurrently; they are two independent reads,
// so the pair can be slightly stale under concurrent writes.
func (s *ImageService) AllImages(page, limit int) (*GalleryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := (page - 1) * limit

	var (
		images     []models.GeneratedImage
		totalCount int64
	)

	var g errgroup.Group
	g.Go(func() error {
		return s.db.Preload("User").
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&images).Error
	})
	g.Go(func() error {
		return s.db.Model(&models.GeneratedImage{}).Count(&totalCount).Error
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.Internal("Failed to fetch images")
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	responses := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		responses = append(responses, toImageResponse(img, true))
	}

	return &GalleryPage{
		Images:      responses,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}, nil
}

// UserImages lists a user's generated images, newest first.
func (s *ImageService) UserImages(userID uint) ([]ImageResponse, error) {
	var images []models.GeneratedImage
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&images).Error; err != nil {
		return nil, apperrors.Internal("Failed to fetch images")
	}

	responses := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		responses = append(responses, toImageResponse(img, false))
	}
	return responses, nil
}

// ImageByID fetches a single image with its owner nickname.
func (s *ImageService) ImageByID(id uint) (*ImageResponse, error) {
	var image models.GeneratedImage
	if err := s.db.Preload("User").First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Image not found")
		}
		return nil, apperrors.Internal("Failed to fetch image")
	}

	resp := toImageResponse(image, true)
	return &resp, nil
}

func toImageResponse(img models.GeneratedImage, withOwner bool) ImageResponse {
	resp := ImageResponse{
		ID:        img.ID,
		UserID:    img.UserID,
		Prompt:    img.Prompt,
		ImageURL:  img.ImageURL,
		Model:     img.Model,
		Size:      img.Size,
		CreatedAt: img.CreatedAt,
	}
	if withOwner && img.User.ID != 0 {
		resp.User = &ImageOwner{
			ID:       img.User.ID,
			Nickname: img.User.Nickname,
		}
	}
	return resp
}
