package http

import (
	"net/http"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorUseCase usecase.AuthorUseCase
	logger        *logger.Logger
}

func NewAuthorHandler(authorUseCase usecase.AuthorUseCase, logger *logger.Logger) *AuthorHandler {
	return &AuthorHandler{
		authorUseCase: authorUseCase,
		logger:        logger,
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ListActiveAuthors godoc
// @Summary      List active authors
// @Tags         authors
// @Produce      json
// @Success      200  {array}  entity.Author
// @Router       /v1/authors [get]
func (h *AuthorHandler) ListActiveAuthors(c *gin.Context) {
	h.list(c, true)
}

// ListAuthors godoc
// @Summary      List all authors
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Author
// @Router       /v1/admin/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	h.list(c, false)
}

func (h *AuthorHandler) list(c *gin.Context, activeOnly bool) {
	authors, err := h.authorUseCase.ListAuthors(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, h.logger, "list authors", err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// CreateAuthor godoc
// @Summary      Create an author
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        author body entity.CreateAuthorInput true "Author"
// @Success      201  {object}  entity.Author
// @Failure      400  {object}  map[string]string
// @Router       /v1/admin/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req entity.CreateAuthorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.authorUseCase.CreateAuthor(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "create author", err)
		return
	}
	c.JSON(http.StatusCreated, author)
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path int true "Author ID"
// @Param        author body entity.UpdateAuthorInput true "Fields to change"
// @Success      200  {object}  entity.Author
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.UpdateAuthorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.authorUseCase.UpdateAuthor(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "update author", err)
		return
	}
	c.JSON(http.StatusOK, author)
}

// SetAuthorActive godoc
// @Summary      Activate or deactivate an author
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Author ID"
// @Param        body body SetActiveRequest true "New state"
// @Success      200  {object}  entity.Author
// @Router       /v1/admin/authors/{id}/active [patch]
func (h *AuthorHandler) SetAuthorActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author, err := h.authorUseCase.SetAuthorActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		respondError(c, h.logger, "update author", err)
		return
	}
	c.JSON(http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Fails with 409 while any post names the author
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Author ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/admin/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.authorUseCase.DeleteAuthor(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "delete author", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Author deleted"})
}
