package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"cinewave/pkg/s3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const imageMaxSize = 2 << 20 // 2MB

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// uploadKinds maps the URL kind segment to the S3 prefix files land under.
var uploadKinds = map[string]string{
	"thumbnails": "thumbnails",
	"videos":     "videos",
	"trailers":   "trailers",
}

type UploadHandler struct {
	s3Client *s3.Client
}

func NewUploadHandler(s3Client *s3.Client) *UploadHandler {
	return &UploadHandler{
		s3Client: s3Client,
	}
}

type UploadResponse struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary      Upload a media asset
// @Description  Uploads a thumbnail, video or trailer and returns its URL. Thumbnails are images up to 2MB; videos and trailers must carry a video content type.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path     string  true  "thumbnails, videos or trailers"
// @Param        file  formData file    true  "File to upload"
// @Success      201  {object}  UploadResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /creator/uploads/{kind} [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.Param("kind")
	prefix, ok := uploadKinds[kind]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown upload kind"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if kind == "thumbnails" {
		if file.Size > imageMaxSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image must not exceed 2MB"})
			return
		}
		if !imageTypes[contentType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Only jpeg, png and webp are allowed"})
			return
		}
	} else if !strings.HasPrefix(contentType, "video/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a video"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)

	url, err := h.s3Client.UploadFile(key, src, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{URL: url})
}
