package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeonwoo-kim-dev/pixelforge/services"
	"github.com/yeonwoo-kim-dev/pixelforge/validators"
)

type ImageController struct {
	images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{images: images}
}

// Generate runs image generation for the authenticated user and returns the
// stored image path.
func (ic *ImageController) Generate(c *gin.Context) {
	req, ok := validators.ValidateGenerateImageRequest(c)
	if !ok {
		return
	}

	userID := c.GetUint("userID")

	imageURL, err := ic.images.Generate(c.Request.Context(), req.Prompt, req.Model, userID)
	if err != nil {
		sendError(c, "Image generation failed", err)
		return
	}

	sendResponse(c, http.StatusOK, "Image generated successfully", map[string]interface{}{
		"success":  true,
		"imageUrl": imageURL,
	}, nil)
}

// ListImages returns one page of the public gallery.
func (ic *ImageController) ListImages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := ic.images.AllImages(page, limit)
	if err != nil {
		sendError(c, "Failed to fetch images", err)
		return
	}

	sendResponse(c, http.StatusOK, "Images retrieved successfully", result, nil)
}

// ImageByID returns a single image with its owner nickname.
func (ic *ImageController) ImageByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		sendResponse(c, http.StatusBadRequest, "Invalid image id", nil, "Image id must be a number")
		return
	}

	image, err := ic.images.ImageByID(uint(id))
	if err != nil {
		sendError(c, "Failed to fetch image", err)
		return
	}

	sendResponse(c, http.StatusOK, "Image retrieved successfully", map[string]interface{}{
		"image": image,
	}, nil)
}

// UserImages lists all images owned by the given user.
func (ic *ImageController) UserImages(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil {
		sendResponse(c, http.StatusBadRequest, "Invalid user id", nil, "A numeric userId query parameter is required")
		return
	}

	images, err := ic.images.UserImages(uint(userID))
	if err != nil {
		sendError(c, "Failed to fetch images", err)
		return
	}

	sendResponse(c, http.StatusOK, "Images retrieved successfully", map[string]interface{}{
		"images": images,
	}, nil)
}
