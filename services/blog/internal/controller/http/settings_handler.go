package http

import (
	"net/http"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsUseCase usecase.SettingsUseCase
	userUseCase     usecase.UserUseCase
	logger          *logger.Logger
}

func NewSettingsHandler(settingsUseCase usecase.SettingsUseCase, userUseCase usecase.UserUseCase, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
		userUseCase:     userUseCase,
		logger:          logger,
	}
}

type UpdateUserRequest struct {
	ID      string            `json:"id" binding:"required"`
	Updates entity.UserUpdate `json:"updates"`
}

// GetSettings godoc
// @Summary      Site settings
// @Description  SMTP fields are blank; admins read them from /admin/settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]entity.SiteSettings
// @Failure      500  {object}  map[string]string
// @Router       /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, ok := h.loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings.Public()})
}

// GetAdminSettings godoc
// @Summary      Site settings including SMTP fields
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]entity.SiteSettings
// @Failure      500  {object}  map[string]string
// @Router       /admin/settings [get]
func (h *SettingsHandler) GetAdminSettings(c *gin.Context) {
	settings, ok := h.loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) loadSettings(c *gin.Context) (entity.SiteSettings, bool) {
	settings, err := h.settingsUseCase.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return entity.SiteSettings{}, false
	}
	return settings, true
}

// SaveSettings godoc
// @Summary      Save site settings
// @Description  Writes all keys. Keys saved before a failure stay saved.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        settings body entity.SiteSettings true "Settings"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /settings [post]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req entity.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsUseCase.Save(c.Request.Context(), req); err != nil {
		h.logger.Error("Failed to save settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.User
// @Router       /users [get]
func (h *SettingsHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary      Update a user
// @Description  Only full_name, avatar_url, role and is_active can change
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body UpdateUserRequest true "User id and changes"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users [patch]
func (h *SettingsHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), req.ID, req.Updates)
	if err != nil {
		respondError(c, h.logger, "update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
