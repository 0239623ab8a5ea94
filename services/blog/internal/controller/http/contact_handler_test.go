package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitContact(t *testing.T) {
	mockUseCase := new(MockContactUseCase)
	handler := NewContactHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/contact", handler.SubmitContact)

	mockUseCase.On("Submit", mock.Anything, usecase.ContactMessage{
		FirstName: "Asha",
		LastName:  "K",
		Email:     "asha@example.com",
		Message:   "Hello",
	}).Return(nil)

	body := `{"firstName":"Asha","lastName":"K","email":"asha@example.com","message":"Hello"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	mockUseCase.AssertExpectations(t)
}

func TestSubmitContact_QueueDown(t *testing.T) {
	mockUseCase := new(MockContactUseCase)
	handler := NewContactHandler(mockUseCase, logger.NewNop())

	router := setupTestRouter()
	router.POST("/contact", handler.SubmitContact)

	mockUseCase.On("Submit", mock.Anything, mock.Anything).Return(usecase.ErrUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/contact", strings.NewReader(`{"email":"a@b.co"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
