package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kimppop/portfolio-backend/internal/feeds"
	"github.com/kimppop/portfolio-backend/internal/models"
)

// FeedProjectLister описывает выборку проектов для лент.
type FeedProjectLister interface {
	ListProjects(ctx context.Context, projectType string) ([]models.Project, error)
}

// FeedHandler отдаёт sitemap.xml и RSS ленту.
type FeedHandler struct {
	projects FeedProjectLister

	baseURL     string
	title       string
	description string
}

// NewFeedHandler создаёт хэндлер лент.
func NewFeedHandler(projects FeedProjectLister, baseURL, title, description string) *FeedHandler {
	return &FeedHandler{
		projects:    projects,
		baseURL:     baseURL,
		title:       title,
		description: description,
	}
}

// Sitemap отдаёт карту сайта.
// GET /sitemap.xml
func (h *FeedHandler) Sitemap(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context(), "")
	if err != nil {
		c.Error(err)
		return
	}

	out, err := feeds.Sitemap(h.baseURL, time.Now(), projects)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}

// RSS отдаёт ленту проектов.
// GET /rss.xml
func (h *FeedHandler) RSS(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context(), "")
	if err != nil {
		c.Error(err)
		return
	}

	out, err := feeds.RSS(h.baseURL, h.title, h.description, time.Now(), projects)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", out)
}
