package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// ErrProjectNotFound возвращается, когда проект не найден.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository отвечает за работу с проектами портфолио.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectListColumns = `
	id, title, subtitle, description, project_type, app_icon,
	start_date, end_date, is_ongoing, technologies, tags,
	github_url, demo_url, status, priority
`

const projectDetailColumns = projectListColumns + `,
	features, code_snippets, detailed_description, challenges, achievements,
	lines_of_code, commit_count, contributor_count, screenshots,
	documentation_url, client, created_at, updated_at
`

// List возвращает проекты, опционально отфильтрованные по типу.
// Сортировка фиксированная: приоритет, затем дата создания по убыванию.
func (r *ProjectRepository) List(ctx context.Context, projectType string) ([]models.Project, error) {
	var projects []models.Project

	if projectType != "" {
		query := `SELECT ` + projectListColumns + `
			FROM projects
			WHERE project_type = $1
			ORDER BY priority DESC, created_at DESC`
		if err := r.db.SelectContext(ctx, &projects, query, projectType); err != nil {
			return nil, fmt.Errorf("project repository: list by type %w", err)
		}
		return projects, nil
	}

	query := `SELECT ` + projectListColumns + `
		FROM projects
		ORDER BY priority DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}
	return projects, nil
}

// GetByID возвращает полную запись проекта по идентификатору.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.ProjectDetail, error) {
	query := `SELECT ` + projectDetailColumns + ` FROM projects WHERE id = $1`

	var detail models.ProjectDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: get by id %w", err)
	}
	return &detail, nil
}

// GetByPriority возвращает проект с заданным приоритетом.
// Используется синхронизацией скриншотов: папка projectN соответствует priority=N.
func (r *ProjectRepository) GetByPriority(ctx context.Context, priority int) (*models.ProjectDetail, error) {
	query := `SELECT ` + projectDetailColumns + ` FROM projects WHERE priority = $1 LIMIT 1`

	var detail models.ProjectDetail
	if err := r.db.GetContext(ctx, &detail, query, priority); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: get by priority %w", err)
	}
	return &detail, nil
}

// UpdateScreenshots заменяет список скриншотов проекта.
func (r *ProjectRepository) UpdateScreenshots(ctx context.Context, id string, screenshots []string) error {
	query := `UPDATE projects SET screenshots = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, models.StringList(screenshots), id)
	if err != nil {
		return fmt.Errorf("project repository: update screenshots %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("project repository: update screenshots rows affected %w", err)
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
