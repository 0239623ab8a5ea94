package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	mockSettings := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockSettings, new(MockUserUseCase), logger.NewNop())

	router := setupTestRouter()
	router.GET("/settings", handler.GetSettings)

	settings := entity.DefaultSiteSettings()
	settings.SiteName = "MMY"
	settings.SMTPHost = "smtp.mmy.in"
	settings.SMTPUsername = "mailer"
	mockSettings.On("Load", mock.Anything).Return(settings, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/settings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "MMY", response["settings"]["siteName"])
	assert.Equal(t, true, response["settings"]["enableComments"])
	assert.Equal(t, true, response["settings"]["enableNewsletter"])
	assert.Equal(t, "", response["settings"]["smtpHost"])
	assert.Equal(t, "", response["settings"]["smtpPort"])
	assert.Equal(t, "", response["settings"]["smtpUsername"])
}

func TestGetAdminSettings(t *testing.T) {
	mockSettings := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockSettings, new(MockUserUseCase), logger.NewNop())

	router := setupTestRouter()
	router.GET("/admin/settings", handler.GetAdminSettings)

	settings := entity.DefaultSiteSettings()
	settings.SMTPHost = "smtp.mmy.in"
	settings.SMTPUsername = "mailer"
	mockSettings.On("Load", mock.Anything).Return(settings, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/settings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]entity.SiteSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, settings, response["settings"])
}

func TestGetSettings_Error(t *testing.T) {
	mockSettings := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockSettings, new(MockUserUseCase), logger.NewNop())

	router := setupTestRouter()
	router.GET("/admin/settings", handler.GetSettings)

	mockSettings.On("Load", mock.Anything).Return(entity.SiteSettings{}, errors.New("connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/settings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load settings"}`, w.Body.String())
}

func TestSaveSettings(t *testing.T) {
	mockSettings := new(MockSettingsUseCase)
	handler := NewSettingsHandler(mockSettings, new(MockUserUseCase), logger.NewNop())

	router := setupTestRouter()
	router.POST("/admin/settings", handler.SaveSettings)

	mockSettings.On("Save", mock.Anything, mock.MatchedBy(func(s entity.SiteSettings) bool {
		return s.SiteName == "Garage" && !s.EnableComments
	})).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/settings", strings.NewReader(`{"siteName":"Garage","enableComments":false}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	mockSettings.AssertExpectations(t)
}

func TestUpdateUser(t *testing.T) {
	mockUsers := new(MockUserUseCase)
	handler := NewSettingsHandler(new(MockSettingsUseCase), mockUsers, logger.NewNop())

	router := setupTestRouter()
	router.PATCH("/admin/users", handler.UpdateUser)

	role := entity.RoleModerator
	mockUsers.On("UpdateUser", mock.Anything, "u-1", entity.UserUpdate{Role: &role}).
		Return(&entity.User{ID: "u-1", Email: "a@b.co", Role: role}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/admin/users", strings.NewReader(`{"id":"u-1","updates":{"role":"moderator"}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUsers.AssertExpectations(t)
}

func TestUpdateUser_MissingID(t *testing.T) {
	mockUsers := new(MockUserUseCase)
	handler := NewSettingsHandler(new(MockSettingsUseCase), mockUsers, logger.NewNop())

	router := setupTestRouter()
	router.PATCH("/admin/users", handler.UpdateUser)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/admin/users", strings.NewReader(`{"updates":{}}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
