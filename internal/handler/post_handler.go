package handler

import (
	"errors"
	"net/http"

	mid "backoffice-service/internal/middleware"
	"backoffice-service/internal/model"
	"backoffice-service/internal/store"
	"backoffice-service/pkg/database"
	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostRequest defines the structure for blog post creation requests.
type PostRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Body  string `json:"body"`
	Slug  string `json:"slug"`
}

// ListPosts returns the organization's blog posts, newest first.
func ListPosts(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusOK, []model.BlogPost{})
	}

	posts, err := store.NewPostStore(database.GetDB()).List(org.ID)
	if err != nil {
		log.Error("Failed to list posts",
			zap.String("organization_id", org.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch posts"})
	}

	return c.JSON(http.StatusOK, posts)
}

// CreatePost creates a blog post, deriving the slug from the title when
// the request leaves it blank.
func CreatePost(c echo.Context) error {
	log := logger.FromContext(c)

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Post title is required"})
	}

	post := model.BlogPost{
		Title: req.Title,
		Slug:  req.Slug,
	}
	if req.Image != "" {
		post.ImageURL = &req.Image
	}
	if req.Body != "" {
		post.Body = &req.Body
	}

	if err := store.NewPostStore(database.GetDB()).Create(org.ID, &post); err != nil {
		log.Error("Failed to create post",
			zap.String("organization_id", org.ID),
			zap.String("title", req.Title),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create post"})
	}

	log.Info("Post created",
		zap.String("post_id", post.ID),
		zap.String("slug", post.Slug))
	return c.JSON(http.StatusCreated, post)
}

// DeletePost removes a post addressed by its slug.
func DeletePost(c echo.Context) error {
	log := logger.FromContext(c)
	slug := c.Param("slug")

	org, ok := mid.OrganizationFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No organization found for user"})
	}

	if err := store.NewPostStore(database.GetDB()).DeleteBySlug(org.ID, slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
		}
		log.Error("Failed to delete post", zap.String("slug", slug), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete post"})
	}

	log.Info("Post deleted",
		zap.String("slug", slug),
		zap.String("organization_id", org.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}
