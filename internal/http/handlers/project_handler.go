package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// ProjectService описывает операции над проектами, нужные хэндлеру.
type ProjectService interface {
	ListProjects(ctx context.Context, projectType string) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (*models.ProjectDetail, error)
}

// ProjectHandler обрабатывает запросы к портфолио проектов.
type ProjectHandler struct {
	service ProjectService
}

// NewProjectHandler создаёт хэндлер проектов.
func NewProjectHandler(service ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List возвращает список проектов.
// GET /api/projects?project_type=app
func (h *ProjectHandler) List(c *gin.Context) {
	projectType := c.Query("project_type")

	projects, err := h.service.ListProjects(c.Request.Context(), projectType)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Get возвращает полную запись проекта.
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.service.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
