package models

import (
	"time"
)

// Типы проектов.
const (
	ProjectTypeWeb       = "web"
	ProjectTypeMobile    = "mobile"
	ProjectTypeDesktop   = "desktop"
	ProjectTypeFullstack = "fullstack"
	ProjectTypeBackend   = "backend"
	ProjectTypeFrontend  = "frontend"
)

// Статусы проектов.
const (
	ProjectStatusPlanning    = "planning"
	ProjectStatusDevelopment = "development"
	ProjectStatusCompleted   = "completed"
	ProjectStatusMaintenance = "maintenance"
)

// IsValidProjectType проверяет, что тип проекта входит в известный набор.
func IsValidProjectType(t string) bool {
	switch t {
	case ProjectTypeWeb, ProjectTypeMobile, ProjectTypeDesktop,
		ProjectTypeFullstack, ProjectTypeBackend, ProjectTypeFrontend:
		return true
	}
	return false
}

// Technology группирует технологии проекта по категории.
type Technology struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Feature описывает одну возможность проекта.
type Feature struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Details     *string `json:"details,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// CodeSnippet — фрагмент кода для страницы проекта.
type CodeSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	FilePath    string `json:"file_path"`
	Code        string `json:"code"`
}

// Project — карточка проекта для списка.
type Project struct {
	ID           string         `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Subtitle     *string        `db:"subtitle" json:"subtitle"`
	Description  string         `db:"description" json:"description"`
	ProjectType  string         `db:"project_type" json:"project_type"`
	AppIcon      *string        `db:"app_icon" json:"app_icon"`
	StartDate    time.Time      `db:"start_date" json:"start_date"`
	EndDate      *time.Time     `db:"end_date" json:"end_date"`
	IsOngoing    bool           `db:"is_ongoing" json:"is_ongoing"`
	Technologies TechnologyList `db:"technologies" json:"technologies"`
	Tags         StringList     `db:"tags" json:"tags"`
	GithubURL    *string        `db:"github_url" json:"github_url"`
	DemoURL      *string        `db:"demo_url" json:"demo_url"`
	Status       string         `db:"status" json:"status"`
	Priority     int            `db:"priority" json:"priority"`
}

// ProjectDetail — полная запись проекта для отдельной страницы.
type ProjectDetail struct {
	Project

	Features            FeatureList     `db:"features" json:"features"`
	CodeSnippets        CodeSnippetList `db:"code_snippets" json:"code_snippets"`
	DetailedDescription *string         `db:"detailed_description" json:"detailed_description"`
	Challenges          *string         `db:"challenges" json:"challenges"`
	Achievements        *string         `db:"achievements" json:"achievements"`
	LinesOfCode         *int            `db:"lines_of_code" json:"lines_of_code"`
	CommitCount         *int            `db:"commit_count" json:"commit_count"`
	ContributorCount    int             `db:"contributor_count" json:"contributor_count"`
	Screenshots         StringList      `db:"screenshots" json:"screenshots"`
	DocumentationURL    *string         `db:"documentation_url" json:"documentation_url"`
	Client              *string         `db:"client" json:"client"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           *time.Time      `db:"updated_at" json:"updated_at"`
}
