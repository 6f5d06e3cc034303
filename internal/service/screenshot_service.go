package service

import (
	"context"
	"fmt"

	"github.com/kimppop/portfolio-backend/internal/gallery"
	"github.com/kimppop/portfolio-backend/internal/logger"
	"github.com/kimppop/portfolio-backend/internal/models"
)

// ScreenshotLister описывает чтение скриншотов из файлового хранилища.
type ScreenshotLister interface {
	ListImages(ctx context.Context, projectFolder string) ([]string, error)
}

// ProjectScreenshotRepository описывает обновление скриншотов проекта.
type ProjectScreenshotRepository interface {
	GetByPriority(ctx context.Context, priority int) (*models.ProjectDetail, error)
	UpdateScreenshots(ctx context.Context, id string, screenshots []string) error
}

// ScreenshotSyncService синхронизирует содержимое папки projectN
// хранилища со списком скриншотов проекта с priority=N.
type ScreenshotSyncService struct {
	store    ScreenshotLister
	projects ProjectScreenshotRepository

	// Публичный адрес сайта: из относительных путей хранилища собираются
	// ссылки вида /media/projectN/файл, затем галерея дополняет их origin.
	siteBaseURL string
}

// NewScreenshotSyncService создаёт сервис синхронизации.
func NewScreenshotSyncService(store ScreenshotLister, projects ProjectScreenshotRepository, siteBaseURL string) *ScreenshotSyncService {
	return &ScreenshotSyncService{
		store:       store,
		projects:    projects,
		siteBaseURL: siteBaseURL,
	}
}

// Sync обновляет скриншоты проекта с заданным номером.
// Возвращает количество записанных ссылок.
func (s *ScreenshotSyncService) Sync(ctx context.Context, projectNumber int) (int, error) {
	folder := fmt.Sprintf("project%d", projectNumber)

	files, err := s.store.ListImages(ctx, folder)
	if err != nil {
		return 0, fmt.Errorf("screenshot sync: не удалось прочитать папку %s: %w", folder, err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("screenshot sync: в папке %s нет изображений", folder)
	}

	// Относительные пути хранилища превращаем в корневые ссылки /media/...
	refs := make([]string, 0, len(files))
	for _, file := range files {
		refs = append(refs, "/media/"+file)
	}

	// Единая точка нормализации: фильтрация, чистка и сортировка по
	// числу в имени файла — как при отображении галереи.
	urls := gallery.Validate(refs, s.siteBaseURL)
	if len(urls) == 0 {
		return 0, fmt.Errorf("screenshot sync: в папке %s нет валидных изображений", folder)
	}

	project, err := s.projects.GetByPriority(ctx, projectNumber)
	if err != nil {
		return 0, fmt.Errorf("screenshot sync: проект с priority=%d не найден: %w", projectNumber, err)
	}

	if err := s.projects.UpdateScreenshots(ctx, project.ID, urls); err != nil {
		return 0, fmt.Errorf("screenshot sync: не удалось обновить проект %s: %w", project.ID, err)
	}

	logger.WithComponent("screenshot_sync").
		WithField("project_id", project.ID).
		WithField("count", len(urls)).
		Info("скриншоты проекта обновлены")

	return len(urls), nil
}
