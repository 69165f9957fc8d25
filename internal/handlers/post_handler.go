package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"atlasweb_backend/internal/dto"
	"atlasweb_backend/internal/middleware"
	"atlasweb_backend/internal/models"
	"atlasweb_backend/internal/repositories"
	"atlasweb_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostHandler manages the blog collection. Slugs are derived from the
// title when not supplied and must be unique across posts.
type PostHandler struct {
	*BaseHandler
	postRepo repositories.PostRepository
}

func NewPostHandler(base *BaseHandler, postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postRepo:    postRepo,
	}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/posts")
	{
		public.GET("/public", h.ListPublic)
		public.GET("/slug/:slug", h.GetBySlug)
	}

	admin := r.Group("/posts")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postRepo.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) ListPublic(c *gin.Context) {
	if h.ServeCachedPage(c) {
		return
	}

	posts, err := h.postRepo.ListPublished(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.CachePageJSON(c, posts)
}

// GetBySlug serves one published post for the public blog page. Drafts
// stay hidden even when the slug is known.
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postRepo.FindBySlug(h.GetDB(c), c.Param("slug"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("post"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	if !post.IsPublished {
		h.HandleServiceError(c, apperrors.ContentNotFound("post"))
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postRepo.FindByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("post"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	slug, err := h.resolveSlug(db, req.Slug, req.Title, "")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	post := &models.Post{
		Title:          req.Title,
		Slug:           slug,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		Image:          req.Image,
		Category:       req.Category,
		Tags:           req.Tags.JSONSlice(),
		IsPublished:    req.IsPublished,
		IsFeatured:     req.IsFeatured,
		ReadTime:       req.ReadTime,
		AuthorID:       req.AuthorID,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords.JSONSlice(),
	}

	if err := h.postRepo.Create(db, post); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	fields := req.Fields()
	if req.Slug != nil {
		slug, err := h.resolveSlug(db, *req.Slug, "", id)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		fields["slug"] = slug
	}

	if len(fields) > 0 {
		if err := h.postRepo.Update(db, id, fields); err != nil {
			if apperrors.Is(err, repositories.ErrPostNotFound) {
				h.HandleServiceError(c, apperrors.ContentNotFound("post"))
				return
			}
			h.HandleServiceError(c, err)
			return
		}
	}

	post, err := h.postRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("post"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postRepo.Delete(h.GetDB(c), c.Param("id")); err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			h.HandleServiceError(c, apperrors.ContentNotFound("post"))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.InvalidatePages()
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// resolveSlug settles the final slug for a post. An explicit slug that
// collides is a conflict; a title-derived slug gets a random suffix
// instead, so two posts may share a title.
func (h *PostHandler) resolveSlug(db *gorm.DB, explicit, title, excludeID string) (string, error) {
	generated := explicit == ""

	slug := Slugify(explicit)
	if generated {
		slug = Slugify(title)
	}
	if slug == "" {
		return "", apperrors.NewBadRequestError("slug cannot be empty")
	}

	exists, err := h.postRepo.SlugExists(db, slug, excludeID)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if !exists {
		return slug, nil
	}
	if !generated {
		return "", apperrors.SlugAlreadyExists(slug)
	}
	return slug + "-" + shortSuffix(), nil
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses non-alphanumeric runs into
// single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 200 {
		s = strings.Trim(s[:200], "-")
	}
	return s
}

func shortSuffix() string {
	return uuid.NewString()[:8]
}
