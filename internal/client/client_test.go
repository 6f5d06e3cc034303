package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimppop/portfolio-backend/internal/models"
)

func TestResolveBaseURL(t *testing.T) {
	assert.Equal(t, productionAPIURL, ResolveBaseURL("kimppop.site"))
	assert.Equal(t, productionAPIURL, ResolveBaseURL("www.kimppop.site"))
	assert.Equal(t, defaultAPIURL, ResolveBaseURL("localhost"))

	t.Setenv("PORTFOLIO_API_BASE_URL", "http://staging:9000")
	assert.Equal(t, "http://staging:9000", ResolveBaseURL("localhost"))

	// Продакшен-домен имеет приоритет над переменной окружения
	assert.Equal(t, productionAPIURL, ResolveBaseURL("kimppop.site"))
}

func TestFetchProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "web", r.URL.Query().Get("project_type"))

		json.NewEncoder(w).Encode([]models.Project{
			{ID: "1", Title: "Первый проект", ProjectType: "web"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	projects, err := c.FetchProjects(context.Background(), "web")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Первый проект", projects[0].Title)
}

func TestFetchProjects_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.FetchProjects(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchProjectByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects/42", r.URL.Path)

		json.NewEncoder(w).Encode(models.ProjectDetail{
			Project: models.Project{ID: "42", Title: "Проект"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	detail, err := c.FetchProjectByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", detail.ID)
}

func TestFetchProjectByID_NotFoundIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/projects/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	// 404 даёт именно ErrProjectNotFound
	_, err := c.FetchProjectByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	// Прочие ошибки сервера — общая ошибка, не ErrProjectNotFound
	_, err = c.FetchProjectByID(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProjectNotFound)
}

func TestFetchProjectByID_EmptyIDNoRequest(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.FetchProjectByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.False(t, requested, "пустой идентификатор не должен приводить к запросу")
}

func TestProjectLoader_AppliesFreshResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ProjectDetail{
			Project: models.Project{ID: "1", Title: "Проект"},
		})
	}))
	defer srv.Close()

	loader := NewProjectLoader(New(srv.URL))

	var applied *models.ProjectDetail
	err := loader.Load(context.Background(), "1", func(d *models.ProjectDetail) {
		applied = d
	})

	require.NoError(t, err)
	require.NotNil(t, applied)
	assert.Equal(t, "1", applied.ID)
}

func TestProjectLoader_DiscardsStaleResponse(t *testing.T) {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/projects/"):]
		if id == "slow" {
			close(slowStarted)
			<-slowRelease
		}
		json.NewEncoder(w).Encode(models.ProjectDetail{
			Project: models.Project{ID: id, Title: "Проект " + id},
		})
	}))
	defer srv.Close()

	loader := NewProjectLoader(New(srv.URL))

	slowDone := make(chan error, 1)
	var slowApplied bool
	go func() {
		slowDone <- loader.Load(context.Background(), "slow", func(*models.ProjectDetail) {
			slowApplied = true
		})
	}()

	// Дожидаемся, пока медленный запрос повиснет на сервере,
	// затем запускаем более новый и только потом отпускаем старый.
	<-slowStarted

	var freshApplied *models.ProjectDetail
	err := loader.Load(context.Background(), "fresh", func(d *models.ProjectDetail) {
		freshApplied = d
	})
	require.NoError(t, err)
	require.NotNil(t, freshApplied)
	assert.Equal(t, "fresh", freshApplied.ID)

	close(slowRelease)

	assert.ErrorIs(t, <-slowDone, ErrStaleResponse)
	assert.False(t, slowApplied, "устаревший ответ не должен применяться")
}
