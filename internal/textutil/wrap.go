// Package textutil содержит перенос текста по строкам фиксированной ширины
// для равномерного отображения длинных описаний.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxCharsPerLine — ширина строки по умолчанию.
const DefaultMaxCharsPerLine = 30

var whitespaceRe = regexp.MustCompile(`\s+`)

// Tokenize разбивает текст на токены по пробельным символам,
// сохраняя сами пробельные последовательности как токены.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	last := 0
	for _, loc := range whitespaceRe.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			tokens = append(tokens, text[last:loc[0]])
		}
		tokens = append(tokens, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		tokens = append(tokens, text[last:])
	}
	return tokens
}

// Wrap жадно переносит текст на строки не длиннее maxCharsPerLine символов
// (после обрезки пробелов). Слова не разрываются: токен длиннее лимита
// выводится отдельной строкой и превышает его — это ожидаемое поведение,
// а не ошибка. При maxCharsPerLine <= 0 используется ширина по умолчанию.
func Wrap(text string, maxCharsPerLine int) []string {
	if text == "" {
		return nil
	}
	if maxCharsPerLine <= 0 {
		maxCharsPerLine = DefaultMaxCharsPerLine
	}

	var lines []string
	var current string

	for _, token := range Tokenize(text) {
		if strings.TrimSpace(token) == "" {
			current += token
			continue
		}

		test := current + token
		if utf8.RuneCountInString(test) <= maxCharsPerLine {
			current = test
			continue
		}

		if strings.TrimSpace(current) != "" {
			lines = append(lines, strings.TrimSpace(current))
		}
		current = token
	}

	if strings.TrimSpace(current) != "" {
		lines = append(lines, strings.TrimSpace(current))
	}

	return lines
}
