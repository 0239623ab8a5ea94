package http

import (
	"net/http"

	"makemodelyear/pkg/logger"
	"makemodelyear/services/blog/internal/entity"
	"makemodelyear/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

// ListPosts godoc
// @Summary      List published posts
// @Description  Published posts newest first. A non-blank q searches title, excerpt and content.
// @Tags         posts
// @Produce      json
// @Param        q query string false "Search query"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  map[string]string
// @Router       /v1/posts [get]
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogUseCase.ListPublished(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, "list posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListPostsByTag godoc
// @Summary      List published posts by tag
// @Tags         posts
// @Produce      json
// @Param        tag path string true "Tag"
// @Success      200  {array}   entity.Post
// @Failure      400  {object}  map[string]string
// @Router       /v1/posts/tag/{tag} [get]
func (h *BlogHandler) ListPostsByTag(c *gin.Context) {
	posts, err := h.blogUseCase.ListByTag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		respondError(c, h.logger, "list posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostBySlug godoc
// @Summary      Get a published post
// @Description  Post with related posts, SEO metadata and JSON-LD. Records one view.
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  usecase.PostDetail
// @Failure      404  {object}  map[string]string
// @Router       /v1/posts/slug/{slug} [get]
func (h *BlogHandler) GetPostBySlug(c *gin.Context) {
	detail, err := h.blogUseCase.GetPostDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, "get post", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// AdminListPosts godoc
// @Summary      List all posts
// @Description  Every post including drafts, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Router       /v1/admin/posts [get]
func (h *BlogHandler) AdminListPosts(c *gin.Context) {
	posts, err := h.blogUseCase.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list posts", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// AdminGetPost godoc
// @Summary      Get post by ID
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/posts/{id} [get]
func (h *BlogHandler) AdminGetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	post, err := h.blogUseCase.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "get post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Slug is derived from the title unless given; a taken slug gets a numeric suffix.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post body entity.CreatePostInput true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/admin/posts [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req entity.CreatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogUseCase.CreatePost(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "create post", err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "Post ID"
// @Param        post body entity.UpdatePostInput true "Fields to change"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/posts/{id} [put]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req entity.UpdatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.blogUseCase.UpdatePost(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "update post", err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/posts/{id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.blogUseCase.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "delete post", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// DashboardStats godoc
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.DashboardStats
// @Router       /v1/admin/stats [get]
func (h *BlogHandler) DashboardStats(c *gin.Context) {
	stats, err := h.blogUseCase.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "load stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *BlogHandler) Sitemap(c *gin.Context) {
	sitemap, err := h.blogUseCase.Sitemap(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "build sitemap", err)
		return
	}
	writeXML(c, "application/xml; charset=utf-8", sitemap)
}

func (h *BlogHandler) Feed(c *gin.Context) {
	feed, err := h.blogUseCase.Feed(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "build feed", err)
		return
	}
	writeXML(c, "application/rss+xml; charset=utf-8", feed)
}
