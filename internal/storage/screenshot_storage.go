package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

// ScreenshotStorage отвечает за файловое хранилище скриншотов проектов.
// Скриншоты лежат в подкаталогах вида project1, project2, ...
type ScreenshotStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewScreenshotStorage создаёт файловое хранилище.
func NewScreenshotStorage(rootPath string, maxUploadMB int64) (*ScreenshotStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &ScreenshotStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Save сохраняет скриншот в папку проекта и возвращает относительный путь.
// Содержимое проверяется по сигнатуре: принимаются только изображения.
func (s *ScreenshotStorage) Save(ctx context.Context, projectFolder, originalName string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	safeName := sanitizeFilename(originalName)

	dir := filepath.Join(s.rootPath, projectFolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог проекта: %w", err)
	}

	targetPath := filepath.Join(dir, safeName)
	// Уникальное временное имя: параллельные загрузки одного файла не мешают друг другу
	tempPath := targetPath + "." + uuid.NewString() + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: размер файла превышает лимит %d байт", s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	isImg, err := isImageFile(tempPath)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, err
	}
	if !isImg {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: файл %s не является изображением", originalName)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	relative := filepath.Join(projectFolder, safeName)
	return relative, written, nil
}

// ListImages возвращает относительные пути изображений в папке проекта.
// Файлы с чужой сигнатурой пропускаются, даже если расширение похоже на картинку.
func (s *ScreenshotStorage) ListImages(ctx context.Context, projectFolder string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(s.rootPath, projectFolder)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: не удалось прочитать каталог %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Недозаписанные файлы прерванных загрузок
		if strings.HasSuffix(entry.Name(), ".tmp") {
			continue
		}

		isImg, err := isImageFile(filepath.Join(dir, entry.Name()))
		if err != nil || !isImg {
			continue
		}
		images = append(images, filepath.ToSlash(filepath.Join(projectFolder, entry.Name())))
	}

	sort.Strings(images)
	return images, nil
}

// Delete удаляет файл из хранилища.
func (s *ScreenshotStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.rootPath, relativePath)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// isImageFile проверяет сигнатуру файла через filetype.
func isImageFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("storage: не удалось открыть файл %s: %w", path, err)
	}
	defer f.Close()

	// filetype определяет тип по первым 261 байтам
	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("storage: не удалось прочитать файл %s: %w", path, err)
	}

	return filetype.IsImage(head[:n]), nil
}

// sanitizeFilename удаляет потенциально опасные символы.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" || name == "." {
		name = "screenshot-" + uuid.NewString()
	}
	return name
}
