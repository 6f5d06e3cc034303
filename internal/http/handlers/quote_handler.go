package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimppop/portfolio-backend/internal/pricing"
)

// QuoteHandler отдаёт прайс и считает предварительную стоимость.
type QuoteHandler struct {
	calc *pricing.Calculator
}

// NewQuoteHandler создаёт хэндлер калькулятора стоимости.
func NewQuoteHandler(calc *pricing.Calculator) *QuoteHandler {
	return &QuoteHandler{calc: calc}
}

// Catalog возвращает типы услуг и каталог функций с ценами.
// GET /api/quote/catalog
func (h *QuoteHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.calc.Catalog())
}

type estimateRequest struct {
	ServiceType      string   `json:"service_type"`
	SelectedFeatures []string `json:"selected_features"`
}

// Estimate считает стоимость для выбранного типа услуги и функций.
// POST /api/quote/estimate
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	est, err := h.calc.Estimate(req.ServiceType, req.SelectedFeatures)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неизвестный тип услуги"})
		return
	}

	c.JSON(http.StatusOK, est)
}
