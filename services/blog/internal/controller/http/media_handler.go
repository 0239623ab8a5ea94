package http

import (
	"io"
	"net/http"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *logger.Logger
}

func NewMediaHandler(mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUseCase: mediaUseCase,
		logger:       logger,
	}
}

// UploadMedia godoc
// @Summary      Upload an image
// @Description  Stores the image in the bucket. If the bucket is unreachable the image is returned inline as a data URI.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file   formData file   true  "Image (jpeg, png, gif, webp, svg; up to 50MB)"
// @Param        folder formData string false "posts, avatars or content" Enums(posts, avatars, content)
// @Success      201  {object}  usecase.UploadResult
// @Failure      400  {object}  map[string]string
// @Router       /v1/admin/media [post]
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, usecase.MaxUploadSize+1<<20)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, usecase.MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	result, err := h.mediaUseCase.Upload(c.Request.Context(), c.PostForm("folder"), header.Filename, contentType, data)
	if err != nil {
		respondError(c, h.logger, "upload file", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// DeleteMedia godoc
// @Summary      Delete an uploaded image
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        path query string true "Object path, e.g. posts/1700000000000_ab12cd34.png"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /v1/admin/media [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if err := h.mediaUseCase.Delete(c.Request.Context(), c.Query("path")); err != nil {
		respondError(c, h.logger, "delete file", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
