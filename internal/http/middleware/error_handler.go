package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kimppop/portfolio-backend/internal/logger"
	"github.com/kimppop/portfolio-backend/internal/pkg/apperror"
	"github.com/kimppop/portfolio-backend/internal/repository"
)

// ErrorHandler обрабатывает ошибки централизованно: известные ошибки
// превращаются в понятные ответы, внутренние детали не утекают клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Хэндлер мог уже отправить ответ сам
		if c.Writer.Written() {
			return
		}

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()

		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("Request error")
		}

		var appErr *apperror.AppError
		if errors.As(err.Err, &appErr) {
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		statusCode := http.StatusInternalServerError
		message := "внутренняя ошибка сервера"

		switch {
		case errors.Is(err.Err, repository.ErrProjectNotFound):
			statusCode = http.StatusNotFound
			message = "проект не найден"
		case errors.Is(err.Err, repository.ErrCourseNotFound):
			statusCode = http.StatusNotFound
			message = "курс не найден"
		}

		c.JSON(statusCode, gin.H{"error": message})
	}
}
