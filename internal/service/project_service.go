package service

import (
	"context"
	"errors"

	"github.com/kimppop/portfolio-backend/internal/models"
	"github.com/kimppop/portfolio-backend/internal/pkg/apperror"
	"github.com/kimppop/portfolio-backend/internal/repository"
)

// ProjectRepository описывает взаимодействие сервиса с хранилищем проектов.
type ProjectRepository interface {
	List(ctx context.Context, projectType string) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.ProjectDetail, error)
}

// ProjectService содержит бизнес-логику выдачи проектов.
type ProjectService struct {
	repo ProjectRepository
}

// NewProjectService создаёт новый сервис проектов.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ListProjects возвращает проекты, опционально по типу. Неизвестный тип
// не считается ошибкой: фильтр просто не найдёт ни одного проекта.
func (s *ProjectService) ListProjects(ctx context.Context, projectType string) ([]models.Project, error) {
	projects, err := s.repo.List(ctx, projectType)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить список проектов")
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// GetProject возвращает полную запись проекта.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.ProjectDetail, error) {
	detail, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, apperror.ErrProjectNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить проект")
	}
	return detail, nil
}
