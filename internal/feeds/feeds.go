// Package feeds строит sitemap.xml и RSS ленту по проектам портфолио.
package feeds

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/kimppop/portfolio-backend/internal/markdown"
	"github.com/kimppop/portfolio-backend/internal/models"
)

// Статические страницы сайта с приоритетами для sitemap.
var staticPages = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "weekly"},
	{"/about", "0.8", "monthly"},
	{"/projects", "0.9", "weekly"},
	{"/services", "0.8", "monthly"},
	{"/courses", "0.9", "weekly"},
}

const maxRSSDescriptionRunes = 300

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap строит sitemap.xml из статических страниц и проектов.
func Sitemap(baseURL string, now time.Time, projects []models.Project) ([]byte, error) {
	today := now.Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + page.Path,
			LastMod:    today,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	for _, p := range projects {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/projects/%s", baseURL, p.ID),
			LastMod:    today,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feeds: не удалось сериализовать sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

// RSS строит ленту проектов. Описания очищаются от markdown разметки
// и обрезаются до трёхсот символов.
func RSS(baseURL, title, description string, now time.Time, projects []models.Project) ([]byte, error) {
	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:         title,
			Link:          baseURL,
			Description:   description,
			Language:      "ru-RU",
			LastBuildDate: now.Format(time.RFC1123Z),
		},
	}

	for _, p := range projects {
		link := fmt.Sprintf("%s/projects/%s", baseURL, p.ID)
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			PubDate:     p.StartDate.Format(time.RFC1123Z),
			Description: cleanDescription(p.Description),
		})
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("feeds: не удалось сериализовать RSS: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// cleanDescription убирает разметку и ограничивает длину описания.
func cleanDescription(text string) string {
	plain := markdown.Flatten(markdown.Render(text))

	runes := []rune(plain)
	if len(runes) > maxRSSDescriptionRunes {
		return string(runes[:maxRSSDescriptionRunes]) + "..."
	}
	return plain
}
