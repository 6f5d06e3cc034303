// Команда syncshots синхронизирует скриншоты проекта из файлового
// хранилища с записью проекта в базе.
//
// Использование: syncshots <номер проекта>
// Номер соответствует папке projectN хранилища и priority проекта.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/kimppop/portfolio-backend/internal/config"
	"github.com/kimppop/portfolio-backend/internal/db"
	"github.com/kimppop/portfolio-backend/internal/logger"
	"github.com/kimppop/portfolio-backend/internal/repository"
	"github.com/kimppop/portfolio-backend/internal/service"
	"github.com/kimppop/portfolio-backend/internal/storage"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "использование: syncshots <номер проекта>")
		os.Exit(2)
	}

	projectNumber, err := strconv.Atoi(os.Args[1])
	if err != nil || projectNumber <= 0 {
		fmt.Fprintf(os.Stderr, "некорректный номер проекта: %q\n", os.Args[1])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "не удалось загрузить конфигурацию: %v\n", err)
		os.Exit(1)
	}

	logger.Init("info")
	logger.SetTextFormatter()
	log := logger.Log

	ctx := context.Background()

	conn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("не удалось подключиться к базе данных")
	}
	defer conn.Close()

	store, err := storage.NewScreenshotStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.WithError(err).Fatal("не удалось открыть хранилище скриншотов")
	}

	projects := repository.NewProjectRepository(conn)

	sync := service.NewScreenshotSyncService(store, projects, cfg.SiteBaseURL)

	count, err := sync.Sync(ctx, projectNumber)
	if err != nil {
		log.WithError(err).Fatal("синхронизация не выполнена")
	}

	log.WithField("count", count).Info("синхронизация завершена")
}
