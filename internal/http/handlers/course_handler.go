package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// CourseService описывает операции над курсами, нужные хэндлеру.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.CourseDetail, error)
}

// CourseHandler обрабатывает запросы к каталогу курсов.
type CourseHandler struct {
	service CourseService
}

// NewCourseHandler создаёт хэндлер курсов.
func NewCourseHandler(service CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List возвращает каталог курсов.
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// Get возвращает полную запись курса.
// GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный идентификатор курса"})
		return
	}

	detail, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
