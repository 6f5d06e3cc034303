// Package gallery проверяет и нормализует списки ссылок на скриншоты
// проекта и управляет полноэкранным просмотрщиком.
package gallery

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

// Служебные файлы хранилища, которые не являются изображениями.
var placeholderMarkers = []string{".emptyFolderPlaceholder", ".gitkeep"}

var digitsRe = regexp.MustCompile(`\d+`)

// Validate отбрасывает пустые записи, плейсхолдеры и не-изображения,
// нормализует оставшиеся ссылки и сортирует их по числу в имени файла.
// Относительные пути вида /... дополняются origin.
func Validate(images []string, origin string) []string {
	var valid []string

	for _, img := range images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		if isPlaceholder(img) {
			continue
		}
		if !hasImageExtension(img) {
			continue
		}
		valid = append(valid, normalizeURL(img, origin))
	}

	// Стабильная сортировка: записи без числа получают ключ 0
	// и сохраняют исходный относительный порядок.
	sort.SliceStable(valid, func(i, j int) bool {
		return numberFromURL(valid[i]) < numberFromURL(valid[j])
	})

	return valid
}

func isPlaceholder(img string) bool {
	for _, marker := range placeholderMarkers {
		if strings.Contains(img, marker) {
			return true
		}
	}
	return false
}

func hasImageExtension(img string) bool {
	lower := strings.ToLower(img)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

// normalizeURL убирает пробелы и один хвостовой ?, абсолютные URL
// оставляет как есть, корневые пути дополняет origin.
func normalizeURL(img, origin string) string {
	clean := strings.TrimSpace(img)
	clean = strings.TrimSuffix(clean, "?")

	if strings.HasPrefix(clean, "http://") || strings.HasPrefix(clean, "https://") {
		return clean
	}
	if strings.HasPrefix(clean, "/") {
		return origin + clean
	}
	return clean
}

// numberFromURL извлекает первую последовательность цифр из имени файла.
func numberFromURL(url string) int {
	segments := strings.Split(url, "/")
	fileName := segments[len(segments)-1]

	match := digitsRe.FindString(fileName)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
