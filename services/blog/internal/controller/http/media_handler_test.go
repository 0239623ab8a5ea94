package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartImage(t *testing.T, folder string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="car.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	if folder != "" {
		require.NoError(t, writer.WriteField("folder", folder))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadMedia(t *testing.T) {
	mockUseCase := new(MockMediaUseCase)
	handler := NewMediaHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/admin/media", handler.UploadMedia)

	data := []byte("\x89PNG\r\n\x1a\nfake")
	mockUseCase.On("Upload", mock.Anything, "avatars", "car.png", "image/png", data).
		Return(&usecase.UploadResult{URL: "https://cdn.example.com/avatars/1_ab.png", Path: "avatars/1_ab.png"}, nil)

	body, contentType := multipartImage(t, "avatars", data)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "avatars/1_ab.png")
	mockUseCase.AssertExpectations(t)
}

func TestUploadMedia_NoFile(t *testing.T) {
	mockUseCase := new(MockMediaUseCase)
	handler := NewMediaHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/admin/media", handler.UploadMedia)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("folder", "posts"))
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/media", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadMedia_Rejected(t *testing.T) {
	mockUseCase := new(MockMediaUseCase)
	handler := NewMediaHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/admin/media", handler.UploadMedia)

	mockUseCase.On("Upload", mock.Anything, "", "car.png", "image/png", mock.Anything).
		Return(nil, &usecase.ValidationError{Field: "file", Message: "must be an image"})

	body, contentType := multipartImage(t, "", []byte("not really"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/media", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMedia(t *testing.T) {
	mockUseCase := new(MockMediaUseCase)
	handler := NewMediaHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.DELETE("/admin/media", handler.DeleteMedia)

	mockUseCase.On("Delete", mock.Anything, "posts/1_ab.png").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/admin/media?path=posts/1_ab.png", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
