package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadController serves stored image files from the upload root.
type UploadController struct {
	uploadDir string
}

func NewUploadController(uploadDir string) *UploadController {
	return &UploadController{uploadDir: uploadDir}
}

// Serve streams a stored file with a content type inferred from its
// extension. Paths resolving outside the upload root answer 404.
func (uc *UploadController) Serve(c *gin.Context) {
	relPath := strings.TrimPrefix(c.Param("filepath"), "/")

	root, err := filepath.Abs(uc.uploadDir)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	filePath := filepath.Join(root, filepath.FromSlash(relPath))
	if filePath != root && !strings.HasPrefix(filePath, root+string(filepath.Separator)) {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "File not found")
		return
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, contentTypeForFile(filePath), data)
}

func contentTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
