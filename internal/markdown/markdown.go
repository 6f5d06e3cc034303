// Package markdown конвертирует ограниченное подмножество markdown
// (заголовки #..######, жирный **текст**, переводы строк) в плоский
// список сегментов для отображения. Списки, ссылки и блоки кода
// не поддерживаются намеренно.
package markdown

import (
	"regexp"
	"strings"
)

// Segment — один отображаемый фрагмент текста.
// LineBreak-сегмент не несёт текста и обозначает перевод строки.
type Segment struct {
	Text         string `json:"text,omitempty"`
	Bold         bool   `json:"bold,omitempty"`
	HeadingLevel int    `json:"heading_level,omitempty"`
	LineBreak    bool   `json:"line_break,omitempty"`
}

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	boldRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Render разбирает текст в последовательность сегментов, сохраняя
// переводы строк. Пустой вход даёт пустой результат.
func Render(text string) []Segment {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	var result []Segment

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			level := len(m[1])
			// Заголовок целиком жирный, внутренние ** при этом убираются
			for _, seg := range renderInline(strings.TrimSpace(m[2])) {
				seg.Bold = true
				seg.HeadingLevel = level
				result = append(result, seg)
			}
			continue
		}

		if trimmed == "" {
			// Пустая строка отображается как вертикальный отступ
			result = append(result, Segment{LineBreak: true})
			continue
		}

		result = append(result, renderInline(line)...)

		if i < len(lines)-1 {
			result = append(result, Segment{LineBreak: true})
		}
	}

	return result
}

// renderInline разбирает **жирные** вставки внутри строки.
// Непарные ** регулярным выражением не матчатся и остаются как есть.
func renderInline(text string) []Segment {
	if text == "" {
		return nil
	}

	var parts []Segment
	last := 0

	for _, loc := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			parts = append(parts, Segment{Text: text[last:loc[0]]})
		}
		parts = append(parts, Segment{Text: text[loc[2]:loc[3]], Bold: true})
		last = loc[1]
	}

	if last < len(text) {
		parts = append(parts, Segment{Text: text[last:]})
	}

	if parts == nil {
		return []Segment{{Text: text}}
	}
	return parts
}

// Flatten собирает сегменты обратно в текст: перевод строки за
// LineBreak, текст остальных сегментов подряд.
func Flatten(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.LineBreak {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
