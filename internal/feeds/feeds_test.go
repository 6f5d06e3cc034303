package feeds

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimppop/portfolio-backend/internal/models"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testProjects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Title:       "Маркетплейс",
			Description: "Платформа с **онлайн-оплатой** и доставкой",
			StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestSitemap(t *testing.T) {
	out, err := Sitemap("https://www.kimppop.site", testTime, testProjects())
	require.NoError(t, err)

	xml := string(out)

	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "http://www.sitemaps.org/schemas/sitemap/0.9")

	// Статические страницы
	assert.Contains(t, xml, "<loc>https://www.kimppop.site/</loc>")
	assert.Contains(t, xml, "<loc>https://www.kimppop.site/projects</loc>")
	assert.Contains(t, xml, "<loc>https://www.kimppop.site/services</loc>")
	assert.Contains(t, xml, "<loc>https://www.kimppop.site/courses</loc>")

	// Страница проекта с датой генерации
	assert.Contains(t, xml, "<loc>https://www.kimppop.site/projects/1</loc>")
	assert.Contains(t, xml, "<lastmod>2025-06-01</lastmod>")
}

func TestRSS(t *testing.T) {
	out, err := RSS("https://www.kimppop.site", "Портфолио", "Проекты и услуги", testTime, testProjects())
	require.NoError(t, err)

	xml := string(out)

	assert.Contains(t, xml, `<rss version="2.0">`)
	assert.Contains(t, xml, "<title>Портфолио</title>")
	assert.Contains(t, xml, "<language>ru-RU</language>")

	assert.Contains(t, xml, "<title>Маркетплейс</title>")
	assert.Contains(t, xml, "<link>https://www.kimppop.site/projects/1</link>")
	assert.Contains(t, xml, "<guid>https://www.kimppop.site/projects/1</guid>")

	// Markdown разметка убрана из описания
	assert.Contains(t, xml, "Платформа с онлайн-оплатой и доставкой")
	assert.NotContains(t, xml, "**")
}

func TestRSS_TruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("о", 500)
	projects := []models.Project{{
		ID:          "1",
		Title:       "Проект",
		Description: long,
		StartDate:   testTime,
	}}

	out, err := RSS("https://www.kimppop.site", "t", "d", testTime, projects)
	require.NoError(t, err)

	assert.Contains(t, string(out), strings.Repeat("о", maxRSSDescriptionRunes)+"...")
	assert.NotContains(t, string(out), strings.Repeat("о", maxRSSDescriptionRunes+1))
}
