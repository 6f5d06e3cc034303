package gallery

import (
	"fmt"
)

// Клавиши, на которые реагирует просмотрщик.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Viewer — полноэкранный просмотрщик изображений с циклической навигацией.
type Viewer struct {
	images []string
	index  int
	open   bool
}

// NewViewer создаёт закрытый просмотрщик над списком изображений.
func NewViewer(images []string) *Viewer {
	return &Viewer{images: images}
}

// Open открывает просмотрщик на заданном индексе. Пустой список или
// индекс вне диапазона оставляют просмотрщик закрытым.
func (v *Viewer) Open(index int) bool {
	if len(v.images) == 0 || index < 0 || index >= len(v.images) {
		return false
	}
	v.index = index
	v.open = true
	return true
}

// Close закрывает просмотрщик.
func (v *Viewer) Close() {
	v.open = false
}

// IsOpen сообщает, открыт ли просмотрщик.
func (v *Viewer) IsOpen() bool {
	return v.open
}

// Index возвращает текущий индекс.
func (v *Viewer) Index() int {
	return v.index
}

// Current возвращает текущее изображение.
func (v *Viewer) Current() (string, bool) {
	if !v.open {
		return "", false
	}
	return v.images[v.index], true
}

// Next переходит к следующему изображению, после последнего — к первому.
func (v *Viewer) Next() {
	if !v.open {
		return
	}
	if v.index == len(v.images)-1 {
		v.index = 0
		return
	}
	v.index++
}

// Previous переходит к предыдущему изображению, перед первым — к последнему.
func (v *Viewer) Previous() {
	if !v.open {
		return
	}
	if v.index == 0 {
		v.index = len(v.images) - 1
		return
	}
	v.index--
}

// HandleKey обрабатывает нажатие клавиши: стрелки листают, Escape закрывает.
func (v *Viewer) HandleKey(key string) {
	if !v.open {
		return
	}
	switch key {
	case KeyEscape:
		v.Close()
	case KeyArrowLeft:
		v.Previous()
	case KeyArrowRight:
		v.Next()
	}
}

// Counter возвращает счётчик вида "3 / 10" (нумерация с единицы).
func (v *Viewer) Counter() string {
	return fmt.Sprintf("%d / %d", v.index+1, len(v.images))
}
