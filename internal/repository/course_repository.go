package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// ErrCourseNotFound возвращается, когда курс не найден.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository отвечает за работу с каталогом курсов.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository создаёт экземпляр репозитория.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List возвращает курсы, новые первыми.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT id, type, title, description, thumbnail, price,
		       duration, pages, chapters, rating, students, level
		FROM courses
		ORDER BY created_at DESC
	`

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("course repository: list %w", err)
	}
	return courses, nil
}

// GetByID возвращает полную запись курса.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.CourseDetail, error) {
	query := `
		SELECT id, type, title, description, thumbnail, price,
		       duration, pages, chapters, rating, students, level,
		       reviews, instructor_name, instructor_bio,
		       what_you_learn, curriculum, requirements,
		       created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var detail models.CourseDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("course repository: get by id %w", err)
	}

	// Преподаватель хранится плоскими колонками, наружу отдаётся объектом
	detail.Instructor = models.Instructor{
		Name: detail.InstructorName,
		Bio:  detail.InstructorBio,
	}
	return &detail, nil
}
