package client

import (
	"context"
	"errors"
	"sync"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// ErrStaleResponse возвращается, когда ответ пришёл после того, как
// пользователь уже запросил другой проект.
var ErrStaleResponse = errors.New("client: ответ устарел и отброшен")

// ProjectLoader загружает проект по идентификатору и защищает от гонки
// медленных ответов: каждый запрос получает номер поколения, и результат
// применяется только если за время запроса не начался следующий.
type ProjectLoader struct {
	client *Client

	mu         sync.Mutex
	generation uint64
}

// NewProjectLoader создаёт загрузчик поверх клиента.
func NewProjectLoader(c *Client) *ProjectLoader {
	return &ProjectLoader{client: c}
}

// Load загружает проект и вызывает apply с результатом, только если
// загрузка всё ещё актуальна. Устаревший ответ отбрасывается с
// ErrStaleResponse; ошибки сети и ErrProjectNotFound прозрачно
// пробрасываются вызывающему.
func (l *ProjectLoader) Load(ctx context.Context, id string, apply func(*models.ProjectDetail)) error {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.mu.Unlock()

	detail, err := l.client.FetchProjectByID(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		return ErrStaleResponse
	}
	if err != nil {
		return err
	}

	apply(detail)
	return nil
}
