package middleware

import (
	"errors"
	"net/http"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/pkg/apperror"
	"go-lawfirm-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.AppError(c, appErr)
				return
			}

			// Never expose internal error details to clients in
			// production. Log the actual error server-side and send a
			// generic message.
			logger.L().Error("unhandled request error", "error", err, "path", c.FullPath())
			if isProduction {
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
				return
			}
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", err.Error())
		}
	}
}
