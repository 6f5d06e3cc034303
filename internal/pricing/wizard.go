package pricing

import (
	"errors"
	"sort"
)

// Step — шаг конструктора услуг.
type Step int

const (
	StepServiceSelection Step = iota + 1
	StepFeatureSelection
	StepAdditionalFeatures
)

var (
	ErrServiceTypeRequired = errors.New("pricing: сначала выберите тип услуги")
	ErrUnknownServiceType  = errors.New("pricing: неизвестный тип услуги")
	ErrStepOutOfRange      = errors.New("pricing: недопустимый шаг")
	ErrNotAtFinalStep      = errors.New("pricing: заявка формируется на последнем шаге")
)

// Wizard — трёхшаговый конструктор заявки: тип услуги, выбор функций,
// дополнительные пожелания. Вперёд можно идти только по порядку, назад —
// на любой пройденный шаг. Смена типа услуги не сбрасывает выбранные
// функции: выбор принадлежит конструктору, а не типу услуги.
type Wizard struct {
	calc *Calculator

	step          Step
	serviceTypeID string
	selected      map[string]struct{}
	additional    string
}

// NewWizard создаёт конструктор на первом шаге.
func NewWizard(catalog *Catalog) *Wizard {
	return &Wizard{
		calc:     NewCalculator(catalog),
		step:     StepServiceSelection,
		selected: make(map[string]struct{}),
	}
}

// Step возвращает текущий шаг.
func (w *Wizard) Step() Step {
	return w.step
}

// ServiceTypeID возвращает выбранный тип услуги ("" если не выбран).
func (w *Wizard) ServiceTypeID() string {
	return w.serviceTypeID
}

// SelectServiceType выбирает тип услуги на любом шаге.
func (w *Wizard) SelectServiceType(id string) error {
	if _, ok := w.calc.Catalog().ServiceType(id); !ok {
		return ErrUnknownServiceType
	}
	w.serviceTypeID = id
	return nil
}

// Next переходит на следующий шаг. Покинуть первый шаг без
// выбранного типа услуги нельзя.
func (w *Wizard) Next() error {
	switch w.step {
	case StepServiceSelection:
		if w.serviceTypeID == "" {
			return ErrServiceTypeRequired
		}
		w.step = StepFeatureSelection
	case StepFeatureSelection:
		w.step = StepAdditionalFeatures
	case StepAdditionalFeatures:
		return ErrStepOutOfRange
	}
	return nil
}

// Back возвращает на предыдущий шаг.
func (w *Wizard) Back() error {
	if w.step <= StepServiceSelection {
		return ErrStepOutOfRange
	}
	w.step--
	return nil
}

// GoTo переходит на любой уже пройденный шаг.
func (w *Wizard) GoTo(step Step) error {
	if step < StepServiceSelection || step > w.step {
		return ErrStepOutOfRange
	}
	w.step = step
	return nil
}

// ToggleFeature включает или выключает функцию. Меняется только набор
// выбранного: шаг и тип услуги остаются как были.
func (w *Wizard) ToggleFeature(name string) {
	if _, ok := w.selected[name]; ok {
		delete(w.selected, name)
		return
	}
	w.selected[name] = struct{}{}
}

// IsSelected сообщает, выбрана ли функция.
func (w *Wizard) IsSelected(name string) bool {
	_, ok := w.selected[name]
	return ok
}

// SelectedFeatures возвращает выбранные функции в стабильном порядке.
func (w *Wizard) SelectedFeatures() []string {
	names := make([]string, 0, len(w.selected))
	for name := range w.selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetAdditionalFeatures сохраняет свободный текст пожеланий.
func (w *Wizard) SetAdditionalFeatures(text string) {
	w.additional = text
}

// AdditionalFeatures возвращает текст пожеланий.
func (w *Wizard) AdditionalFeatures() string {
	return w.additional
}

// Estimate возвращает текущую оценку стоимости. До выбора типа услуги
// оценка нулевая.
func (w *Wizard) Estimate() Estimate {
	if w.serviceTypeID == "" {
		return Estimate{}
	}
	est, err := w.calc.Estimate(w.serviceTypeID, w.SelectedFeatures())
	if err != nil {
		return Estimate{}
	}
	return est
}

// Reset возвращает конструктор в исходное состояние.
func (w *Wizard) Reset() {
	w.step = StepServiceSelection
	w.serviceTypeID = ""
	w.selected = make(map[string]struct{})
	w.additional = ""
}

// Submission — итог конструктора для отправки заявки.
type Submission struct {
	ServiceTypeID      string   `json:"service_type"`
	SelectedFeatures   []string `json:"selected_features"`
	AdditionalFeatures string   `json:"additional_features"`
	EstimatedPrice     int64    `json:"estimated_price"`
}

// Submission формирует заявку. Доступно только на последнем шаге.
func (w *Wizard) Submission() (Submission, error) {
	if w.step != StepAdditionalFeatures {
		return Submission{}, ErrNotAtFinalStep
	}
	est := w.Estimate()
	return Submission{
		ServiceTypeID:      w.serviceTypeID,
		SelectedFeatures:   w.SelectedFeatures(),
		AdditionalFeatures: w.additional,
		EstimatedPrice:     est.TotalPrice,
	}, nil
}
