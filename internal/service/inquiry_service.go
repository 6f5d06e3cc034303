package service

import (
	"context"

	"github.com/kimppop/portfolio-backend/internal/models"
	"github.com/kimppop/portfolio-backend/internal/pkg/apperror"
	"github.com/kimppop/portfolio-backend/internal/pricing"
	"github.com/kimppop/portfolio-backend/internal/validation"
)

// InquiryRepository описывает сохранение заявок.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
}

// InquiryService принимает заявки из конструктора услуг.
type InquiryService struct {
	repo InquiryRepository
	calc *pricing.Calculator
}

// NewInquiryService создаёт сервис заявок поверх заданного прайса.
func NewInquiryService(repo InquiryRepository, catalog *pricing.Catalog) *InquiryService {
	return &InquiryService{
		repo: repo,
		calc: pricing.NewCalculator(catalog),
	}
}

// CreateInquiryInput — данные заявки с формы.
type CreateInquiryInput struct {
	Name               string
	Email              string
	Phone              string
	Company            *string
	Message            *string
	ServiceType        *string
	SelectedFeatures   []string
	AdditionalFeatures *string
}

// CreateInquiry валидирует заявку, пересчитывает оценку стоимости по
// каталогу и сохраняет результат. Оценке с фронтенда не доверяем:
// хранится только пересчитанное значение.
func (s *InquiryService) CreateInquiry(ctx context.Context, input CreateInquiryInput) (*models.Inquiry, error) {
	if err := validation.ValidateInquiryName(input.Name); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidatePhone(input.Phone); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}
	if err := validation.ValidateInquiryMessage(input.Message); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	inquiry := &models.Inquiry{
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		Company:            input.Company,
		Message:            input.Message,
		ServiceType:        input.ServiceType,
		SelectedFeatures:   models.StringList(input.SelectedFeatures),
		AdditionalFeatures: input.AdditionalFeatures,
		Status:             models.InquiryStatusPending,
	}

	if input.ServiceType != nil && *input.ServiceType != "" {
		est, err := s.calc.Estimate(*input.ServiceType, input.SelectedFeatures)
		if err != nil {
			return nil, apperror.Wrap(err, apperror.ErrCodeValidation, "неизвестный тип услуги")
		}
		inquiry.EstimatedPrice = &est.TotalPrice
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сохранить заявку")
	}

	return inquiry, nil
}
