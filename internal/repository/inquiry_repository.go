package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kimppop/portfolio-backend/internal/models"
)

// InquiryRepository отвечает за сохранение заявок.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository создаёт экземпляр репозитория.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create сохраняет заявку и заполняет ID, статус и дату создания.
func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			name, email, phone, company, message,
			service_type, selected_features, additional_features,
			estimated_price, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusPending
	}

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Company,
		inquiry.Message,
		inquiry.ServiceType,
		inquiry.SelectedFeatures,
		inquiry.AdditionalFeatures,
		inquiry.EstimatedPrice,
		inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt); err != nil {
		return fmt.Errorf("inquiry repository: insert %w", err)
	}

	return nil
}
