package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimppop/portfolio-backend/internal/models"
	"github.com/kimppop/portfolio-backend/internal/service"
)

// InquiryService описывает приём заявок, нужный хэндлеру.
type InquiryService interface {
	CreateInquiry(ctx context.Context, input service.CreateInquiryInput) (*models.Inquiry, error)
}

// InquiryHandler обрабатывает заявки из конструктора услуг.
type InquiryHandler struct {
	service InquiryService
}

// NewInquiryHandler создаёт хэндлер заявок.
func NewInquiryHandler(service InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type createInquiryRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Company            *string  `json:"company"`
	Message            *string  `json:"message"`
	ServiceType        *string  `json:"service_type"`
	SelectedFeatures   []string `json:"selected_features"`
	AdditionalFeatures *string  `json:"additional_features"`
}

// Create принимает новую заявку.
// POST /api/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	inquiry, err := h.service.CreateInquiry(c.Request.Context(), service.CreateInquiryInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Company:            req.Company,
		Message:            req.Message,
		ServiceType:        req.ServiceType,
		SelectedFeatures:   req.SelectedFeatures,
		AdditionalFeatures: req.AdditionalFeatures,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      inquiry.ID,
		"message": "заявка принята, мы свяжемся с вами в ближайшее время",
	})
}
