package service

import (
	"context"
	"errors"

	"github.com/kimppop/portfolio-backend/internal/models"
	"github.com/kimppop/portfolio-backend/internal/pkg/apperror"
	"github.com/kimppop/portfolio-backend/internal/repository"
)

// CourseRepository описывает взаимодействие сервиса с хранилищем курсов.
type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.CourseDetail, error)
}

// CourseService содержит бизнес-логику каталога курсов.
type CourseService struct {
	repo CourseRepository
}

// NewCourseService создаёт новый сервис курсов.
func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

// ListCourses возвращает каталог курсов.
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить список курсов")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// GetCourse возвращает полную запись курса.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.CourseDetail, error) {
	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, apperror.ErrCourseNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить курс")
	}
	return detail, nil
}
