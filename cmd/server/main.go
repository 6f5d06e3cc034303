package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kimppop/portfolio-backend/internal/config"
	"github.com/kimppop/portfolio-backend/internal/db"
	"github.com/kimppop/portfolio-backend/internal/http/handlers"
	"github.com/kimppop/portfolio-backend/internal/http/router"
	"github.com/kimppop/portfolio-backend/internal/logger"
	"github.com/kimppop/portfolio-backend/internal/pricing"
	"github.com/kimppop/portfolio-backend/internal/repository"
	"github.com/kimppop/portfolio-backend/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		logger.Log.WithError(err).Fatal("не удалось загрузить конфигурацию")
	}

	logger.Init(getLogLevel(cfg.Env))
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}
	log := logger.Log

	conn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("не удалось подключиться к базе данных")
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn, cfg.MigrationsPath); err != nil {
		log.WithError(err).Fatal("не удалось выполнить миграции")
	}

	projectRepo := repository.NewProjectRepository(conn)
	courseRepo := repository.NewCourseRepository(conn)
	inquiryRepo := repository.NewInquiryRepository(conn)

	catalog := pricing.DefaultCatalog()

	projectService := service.NewProjectService(projectRepo)
	courseService := service.NewCourseService(courseRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, catalog)

	engine := router.New(cfg, router.Handlers{
		Health:  handlers.NewHealthHandler(conn),
		Project: handlers.NewProjectHandler(projectService),
		Course:  handlers.NewCourseHandler(courseService),
		Inquiry: handlers.NewInquiryHandler(inquiryService),
		Quote:   handlers.NewQuoteHandler(pricing.NewCalculator(catalog)),
		Feed:    handlers.NewFeedHandler(projectService, cfg.SiteBaseURL, cfg.SiteTitle, cfg.SiteDescription),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("получен сигнал остановки, завершаем работу")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("ошибка при остановке HTTP сервера")
		}
	}()

	log.WithField("port", cfg.HTTPPort).Info("HTTP сервер запущен")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("HTTP сервер завершился с ошибкой")
	}

	log.Info("сервер остановлен")
}

// getLogLevel возвращает уровень логирования по окружению.
func getLogLevel(env string) string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	if env == "development" {
		return "debug"
	}
	return "info"
}
