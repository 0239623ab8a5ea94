package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"makemodelyear/pkg/logger"

	"github.com/google/uuid"
)

const MaxUploadSize = 50 << 20

var (
	uploadFolders = map[string]bool{"posts": true, "avatars": true, "content": true}

	allowedImageTypes = map[string]string{
		"image/jpeg":    "jpg",
		"image/png":     "png",
		"image/gif":     "gif",
		"image/webp":    "webp",
		"image/svg+xml": "svg",
	}
)

// ObjectStorage is the bucket images are written to.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

type UploadResult struct {
	URL    string `json:"url"`
	Path   string `json:"path,omitempty"`
	Inline bool   `json:"inline"`
}

type MediaUseCase interface {
	// Upload stores an image and returns its public URL. When the bucket
	// cannot take it, the image comes back inline as a data URI.
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error)
	Delete(ctx context.Context, path string) error
}

type mediaUseCase struct {
	storage ObjectStorage
	logger  *logger.Logger
	now     func() time.Time
}

// NewMediaUseCase accepts a nil storage; uploads are then always inline.
func NewMediaUseCase(storage ObjectStorage, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{storage: storage, logger: logger, now: time.Now}
}

func (uc *mediaUseCase) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error) {
	if folder == "" {
		folder = "posts"
	}
	if !uploadFolders[folder] {
		return nil, invalid("folder", "must be posts, avatars or content")
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, invalid("file", "must be a JPEG, PNG, GIF, WebP or SVG image")
	}
	if len(data) == 0 {
		return nil, invalid("file", "is empty")
	}
	if len(data) > MaxUploadSize {
		return nil, invalid("file", "exceeds the 50MB limit")
	}
	if fileExt := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."); fileExt != "" {
		ext = fileExt
	}

	if uc.storage == nil {
		return inlineResult(contentType, data), nil
	}

	if err := uc.storage.EnsureBucket(ctx); err != nil {
		uc.logger.Error("[S3] failed to ensure bucket: %v", err)
	}

	key := fmt.Sprintf("%s/%d_%s.%s", folder, uc.now().UnixMilli(), uuid.New().String()[:8], ext)
	url, err := uc.storage.UploadFile(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		uc.logger.Warn("[S3] upload of %s failed, returning inline image: %v", key, err)
		return inlineResult(contentType, data), nil
	}
	return &UploadResult{URL: url, Path: key}, nil
}

func (uc *mediaUseCase) Delete(ctx context.Context, path string) error {
	path = strings.TrimPrefix(strings.TrimSpace(path), "/")
	if path == "" {
		return invalid("path", "is required")
	}
	if uc.storage == nil {
		return ErrUnavailable
	}
	if err := uc.storage.DeleteFile(ctx, path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func inlineResult(contentType string, data []byte) *UploadResult {
	return &UploadResult{
		URL:    "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Inline: true,
	}
}
