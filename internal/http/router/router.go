package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kimppop/portfolio-backend/internal/config"
	"github.com/kimppop/portfolio-backend/internal/http/handlers"
	"github.com/kimppop/portfolio-backend/internal/http/middleware"
)

// Handlers собирает все хэндлеры приложения для регистрации маршрутов.
type Handlers struct {
	Health  *handlers.HealthHandler
	Project *handlers.ProjectHandler
	Course  *handlers.CourseHandler
	Inquiry *handlers.InquiryHandler
	Quote   *handlers.QuoteHandler
	Feed    *handlers.FeedHandler
}

// New создаёт настроенный gin.Engine со всеми маршрутами и middleware.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Check)

	// Скриншоты проектов отдаются как статика из файлового хранилища
	r.Static("/media", cfg.MediaStoragePath)

	r.GET("/sitemap.xml", h.Feed.Sitemap)
	r.GET("/rss.xml", h.Feed.RSS)

	api := r.Group("/api")
	{
		api.GET("/projects", h.Project.List)
		api.GET("/projects/:id", h.Project.Get)

		api.GET("/courses", h.Course.List)
		api.GET("/courses/:id", h.Course.Get)

		api.GET("/quote/catalog", h.Quote.Catalog)
		api.POST("/quote/estimate", h.Quote.Estimate)

		// Публичная форма: ограничиваем частоту запросов с одного IP
		api.POST("/inquiries",
			middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod),
			h.Inquiry.Create,
		)
	}

	return r
}
