// Package client — клиент read-only API портфолио, которым пользуется
// фронтенд: список проектов и отдельный проект.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// ErrProjectNotFound возвращается при ответе 404 на запрос проекта.
// Остальные не-2xx ответы считаются общей сетевой ошибкой.
var ErrProjectNotFound = errors.New("client: проект не найден")

// Продакшен-домены сайта и соответствующий им адрес API.
const (
	productionHost    = "kimppop.site"
	productionWWWHost = "www.kimppop.site"
	productionAPIURL  = "https://web-production-d929.up.railway.app"

	defaultAPIURL = "http://localhost:8000"
)

// ResolveBaseURL выбирает адрес API один раз при старте:
// продакшен-домен даёт фиксированный адрес, иначе берётся переменная
// окружения, иначе локальный дефолт.
func ResolveBaseURL(hostname string) string {
	if hostname == productionHost || hostname == productionWWWHost {
		return productionAPIURL
	}
	if override := os.Getenv("PORTFOLIO_API_BASE_URL"); override != "" {
		return override
	}
	return defaultAPIURL
}

// Client выполняет запросы к API портфолио.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиента с собственным http.Client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewWithHTTPClient создаёт клиента поверх готового http.Client (для тестов).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FetchProjects возвращает список проектов, опционально отфильтрованный
// по типу. Пустой projectType означает все проекты.
func (c *Client) FetchProjects(ctx context.Context, projectType string) ([]models.Project, error) {
	u, err := url.Parse(c.baseURL + "/api/projects")
	if err != nil {
		return nil, fmt.Errorf("client: некорректный адрес API: %w", err)
	}
	if projectType != "" {
		q := u.Query()
		q.Set("project_type", projectType)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: не удалось создать запрос: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: запрос списка проектов: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("client: не удалось получить проекты: %s", resp.Status)
	}

	var projects []models.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("client: не удалось разобрать список проектов: %w", err)
	}
	return projects, nil
}

// FetchProjectByID возвращает полную запись проекта.
// 404 отличается от прочих ошибок: ErrProjectNotFound.
func (c *Client) FetchProjectByID(ctx context.Context, id string) (*models.ProjectDetail, error) {
	// Пустой идентификатор эквивалентен "не найдено", запрос не отправляется
	if id == "" {
		return nil, ErrProjectNotFound
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/projects/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("client: не удалось создать запрос: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: запрос проекта %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProjectNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("client: не удалось получить проект: %s", resp.Status)
	}

	var detail models.ProjectDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("client: не удалось разобрать проект: %w", err)
	}
	return &detail, nil
}
