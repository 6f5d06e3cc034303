package models

import (
	"time"
)

// Статусы заявки.
const (
	InquiryStatusPending   = "pending"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// Inquiry — заявка на проект из конструктора услуг.
// Оценка стоимости пересчитывается на сервере и хранится вместе с выбором клиента.
type Inquiry struct {
	ID                 int64      `db:"id" json:"id"`
	Name               string     `db:"name" json:"name"`
	Email              string     `db:"email" json:"email"`
	Phone              string     `db:"phone" json:"phone"`
	Company            *string    `db:"company" json:"company"`
	Message            *string    `db:"message" json:"message"`
	ServiceType        *string    `db:"service_type" json:"service_type"`
	SelectedFeatures   StringList `db:"selected_features" json:"selected_features"`
	AdditionalFeatures *string    `db:"additional_features" json:"additional_features"`
	EstimatedPrice     *int64     `db:"estimated_price" json:"estimated_price"`
	Status             string     `db:"status" json:"status"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updated_at"`
}
