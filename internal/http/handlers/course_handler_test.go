package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimppop/portfolio-backend/internal/http/middleware"
	"github.com/kimppop/portfolio-backend/internal/models"
	"github.com/kimppop/portfolio-backend/internal/pkg/apperror"
)

type fakeCourseService struct {
	courses []models.Course
	detail  *models.CourseDetail
	err     error
}

func (f *fakeCourseService) ListCourses(context.Context) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func (f *fakeCourseService) GetCourse(context.Context, int64) (*models.CourseDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func newCourseRouter(svc CourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewCourseHandler(svc)
	r.GET("/api/courses", h.List)
	r.GET("/api/courses/:id", h.Get)
	return r
}

func TestCourseHandler_List(t *testing.T) {
	r := newCourseRouter(&fakeCourseService{courses: []models.Course{
		{ID: 1, Title: "Курс по Go", Level: "beginner"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Курс по Go", courses[0].Title)
	assert.False(t, courses[0].IsPurchased)
}

func TestCourseHandler_Get(t *testing.T) {
	r := newCourseRouter(&fakeCourseService{detail: &models.CourseDetail{
		Course: models.Course{ID: 5, Title: "Курс"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var detail models.CourseDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, int64(5), detail.ID)
}

func TestCourseHandler_Get_BadID(t *testing.T) {
	r := newCourseRouter(&fakeCourseService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	r := newCourseRouter(&fakeCourseService{err: apperror.ErrCourseNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
