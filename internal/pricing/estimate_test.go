package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog строит синтетический прайс: n платных и m бесплатных функций.
func testCatalog(paid, free int) *Catalog {
	features := make([]CatalogFeature, 0, paid+free)
	for i := 0; i < paid; i++ {
		features = append(features, CatalogFeature{Name: fmt.Sprintf("paid-%d", i), IsFree: false})
	}
	for i := 0; i < free; i++ {
		features = append(features, CatalogFeature{Name: fmt.Sprintf("free-%d", i), IsFree: true})
	}

	return NewCatalog(
		[]ServiceType{
			{ID: ServiceTypeApp, Title: "Приложение", BasePrice: 5_000_000},
			{ID: ServiceTypeWeb, Title: "Сайт", BasePrice: 3_000_000},
			{ID: ServiceTypeProgram, Title: "Программа", BasePrice: 4_000_000},
		},
		[]FeatureCategory{{Category: "Тест", Features: features}},
	)
}

func paidNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, fmt.Sprintf("paid-%d", i))
	}
	return names
}

func TestExtraCost(t *testing.T) {
	tests := []struct {
		paidCount int
		want      int64
	}{
		{0, 0},
		{1, 0},
		{15, 0},
		{16, 500_000},
		{20, 500_000},
		{25, 500_000},
		{26, 1_000_000},
		{35, 1_000_000},
		{36, 1_500_000},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("paid=%d", tt.paidCount), func(t *testing.T) {
			assert.Equal(t, tt.want, ExtraCost(tt.paidCount))
		})
	}
}

func TestExtraCost_BatchBoundaries(t *testing.T) {
	// Доплата растёт ступенями по BatchSize, первая ступень после IncludedPaidFeatures
	for n := 0; n <= 40; n++ {
		got := ExtraCost(n)

		extra := n - IncludedPaidFeatures
		var want int64
		if extra > 0 {
			batches := (extra + BatchSize - 1) / BatchSize
			want = int64(batches) * BatchCost
		}

		assert.Equal(t, want, got, "paidCount=%d", n)
	}
}

func TestEstimate_BasePriceByServiceType(t *testing.T) {
	calc := NewCalculator(testCatalog(5, 0))

	tests := []struct {
		serviceType string
		want        int64
	}{
		{ServiceTypeApp, 5_000_000},
		{ServiceTypeWeb, 3_000_000},
		{ServiceTypeProgram, 4_000_000},
	}

	for _, tt := range tests {
		est, err := calc.Estimate(tt.serviceType, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, est.BasePrice)
		assert.Equal(t, tt.want, est.TotalPrice)
	}
}

func TestEstimate_FreeFeaturesNeverPriced(t *testing.T) {
	calc := NewCalculator(testCatalog(40, 40))

	// 15 платных входят в базу; любые бесплатные сверху цену не меняют
	selected := paidNames(15)
	for i := 0; i < 40; i++ {
		selected = append(selected, fmt.Sprintf("free-%d", i))
	}

	est, err := calc.Estimate(ServiceTypeWeb, selected)
	require.NoError(t, err)

	assert.Equal(t, 15, est.PaidCount)
	assert.Equal(t, 40, est.FreeCount)
	assert.Equal(t, int64(0), est.ExtraCost)
	assert.Equal(t, int64(3_000_000), est.TotalPrice)
}

func TestEstimate_ExtraPaidFeatures(t *testing.T) {
	calc := NewCalculator(testCatalog(40, 0))

	est, err := calc.Estimate(ServiceTypeApp, paidNames(26))
	require.NoError(t, err)

	assert.Equal(t, 26, est.PaidCount)
	assert.Equal(t, 11, est.ExtraCount)
	assert.Equal(t, 2, est.ExtraBatches)
	assert.Equal(t, int64(1_000_000), est.ExtraCost)
	assert.Equal(t, int64(6_000_000), est.TotalPrice)
}

func TestEstimate_UnknownFeaturesIgnored(t *testing.T) {
	calc := NewCalculator(testCatalog(5, 0))

	est, err := calc.Estimate(ServiceTypeApp, []string{"paid-0", "такой функции нет", ""})
	require.NoError(t, err)

	assert.Equal(t, 1, est.PaidCount)
	assert.Equal(t, 0, est.FreeCount)
	assert.Equal(t, int64(5_000_000), est.TotalPrice)
}

func TestEstimate_UnknownServiceType(t *testing.T) {
	calc := NewCalculator(testCatalog(5, 0))

	_, err := calc.Estimate("blockchain", nil)
	assert.Error(t, err)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Len(t, catalog.ServiceTypes, 3)

	app, ok := catalog.ServiceType(ServiceTypeApp)
	require.True(t, ok)
	assert.Equal(t, int64(5_000_000), app.BasePrice)

	web, ok := catalog.ServiceType(ServiceTypeWeb)
	require.True(t, ok)
	assert.Equal(t, int64(3_000_000), web.BasePrice)

	program, ok := catalog.ServiceType(ServiceTypeProgram)
	require.True(t, ok)
	assert.Equal(t, int64(4_000_000), program.BasePrice)

	// Базовая регистрация бесплатна, двухфакторка платная
	f, ok := catalog.Feature("Регистрация и вход по email")
	require.True(t, ok)
	assert.True(t, f.IsFree)

	f, ok = catalog.Feature("Двухфакторная аутентификация")
	require.True(t, ok)
	assert.False(t, f.IsFree)
}
