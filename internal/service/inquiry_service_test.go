package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimppop/portfolio-backend/internal/models"
	"github.com/kimppop/portfolio-backend/internal/pkg/apperror"
	"github.com/kimppop/portfolio-backend/internal/pricing"
)

type fakeInquiryRepo struct {
	created *models.Inquiry
	err     error
}

func (f *fakeInquiryRepo) Create(_ context.Context, inquiry *models.Inquiry) error {
	if f.err != nil {
		return f.err
	}
	inquiry.ID = 1
	f.created = inquiry
	return nil
}

func strptr(s string) *string { return &s }

func validInput() CreateInquiryInput {
	return CreateInquiryInput{
		Name:  "Иван Петров",
		Email: "ivan@example.com",
		Phone: "+7 (900) 123-45-67",
	}
}

func TestCreateInquiry(t *testing.T) {
	repo := &fakeInquiryRepo{}
	svc := NewInquiryService(repo, pricing.DefaultCatalog())

	inquiry, err := svc.CreateInquiry(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), inquiry.ID)
	assert.Equal(t, models.InquiryStatusPending, inquiry.Status)
	assert.Nil(t, inquiry.EstimatedPrice)
	require.NotNil(t, repo.created)
}

func TestCreateInquiry_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInquiryInput)
	}{
		{"пустое имя", func(in *CreateInquiryInput) { in.Name = "  " }},
		{"короткое имя", func(in *CreateInquiryInput) { in.Name = "И" }},
		{"пустой email", func(in *CreateInquiryInput) { in.Email = "" }},
		{"некорректный email", func(in *CreateInquiryInput) { in.Email = "не email" }},
		{"пустой телефон", func(in *CreateInquiryInput) { in.Phone = "" }},
		{"телефон с буквами", func(in *CreateInquiryInput) { in.Phone = "позвоните мне" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeInquiryRepo{}
			svc := NewInquiryService(repo, pricing.DefaultCatalog())

			input := validInput()
			tt.mutate(&input)

			_, err := svc.CreateInquiry(context.Background(), input)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.Nil(t, repo.created, "невалидная заявка не должна сохраняться")
		})
	}
}

func TestCreateInquiry_RecalculatesEstimate(t *testing.T) {
	repo := &fakeInquiryRepo{}
	svc := NewInquiryService(repo, pricing.DefaultCatalog())

	input := validInput()
	input.ServiceType = strptr(pricing.ServiceTypeWeb)
	input.SelectedFeatures = []string{
		"Регистрация и вход по email", // бесплатная
		"Корзина",
		"Обычная оплата (карта/перевод)",
	}

	inquiry, err := svc.CreateInquiry(context.Background(), input)
	require.NoError(t, err)

	// Две платные функции укладываются в базовую цену сайта
	require.NotNil(t, inquiry.EstimatedPrice)
	assert.Equal(t, int64(3_000_000), *inquiry.EstimatedPrice)
}

func TestCreateInquiry_UnknownServiceType(t *testing.T) {
	repo := &fakeInquiryRepo{}
	svc := NewInquiryService(repo, pricing.DefaultCatalog())

	input := validInput()
	input.ServiceType = strptr("blockchain")

	_, err := svc.CreateInquiry(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
