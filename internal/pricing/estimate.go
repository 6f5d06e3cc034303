package pricing

import (
	"fmt"
)

// Правила расчёта: 15 платных функций входят в базовую цену,
// каждый следующий блок до 10 функций добавляет фиксированную доплату.
const (
	IncludedPaidFeatures = 15
	BatchSize            = 10
	BatchCost            = 500_000
)

// Estimate — разбивка оценки стоимости.
type Estimate struct {
	ServiceTypeID string `json:"service_type"`
	BasePrice     int64  `json:"base_price"`
	PaidCount     int    `json:"paid_count"`
	FreeCount     int    `json:"free_count"`
	ExtraCount    int    `json:"extra_count"`
	ExtraBatches  int    `json:"extra_batches"`
	ExtraCost     int64  `json:"extra_cost"`
	TotalPrice    int64  `json:"total_price"`
}

// Calculator считает стоимость по каталогу.
type Calculator struct {
	catalog *Catalog
}

// NewCalculator создаёт калькулятор с заданным каталогом.
func NewCalculator(catalog *Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Catalog возвращает прайс калькулятора.
func (c *Calculator) Catalog() *Catalog {
	return c.catalog
}

// ExtraCost возвращает доплату за платные функции сверх включённых.
// Только целочисленная арифметика: округление вверх по блокам.
func ExtraCost(paidCount int) int64 {
	extra := paidCount - IncludedPaidFeatures
	if extra <= 0 {
		return 0
	}
	batches := (extra + BatchSize - 1) / BatchSize
	return int64(batches) * BatchCost
}

// Estimate считает итоговую стоимость для типа услуги и выбранных функций.
// Имена, которых нет в каталоге, не влияют на цену.
func (c *Calculator) Estimate(serviceTypeID string, selected []string) (Estimate, error) {
	st, ok := c.catalog.ServiceType(serviceTypeID)
	if !ok {
		return Estimate{}, fmt.Errorf("pricing: неизвестный тип услуги %q", serviceTypeID)
	}

	est := Estimate{
		ServiceTypeID: st.ID,
		BasePrice:     st.BasePrice,
	}

	for _, name := range selected {
		f, ok := c.catalog.Feature(name)
		if !ok {
			continue
		}
		if f.IsFree {
			est.FreeCount++
		} else {
			est.PaidCount++
		}
	}

	if extra := est.PaidCount - IncludedPaidFeatures; extra > 0 {
		est.ExtraCount = extra
		est.ExtraBatches = (extra + BatchSize - 1) / BatchSize
	}
	est.ExtraCost = int64(est.ExtraBatches) * BatchCost
	est.TotalPrice = est.BasePrice + est.ExtraCost

	return est, nil
}
