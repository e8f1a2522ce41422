package response

import (
	"strconv"

	"go-lawfirm-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Code      string      `json:"code,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: idStr,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, errs interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    errs,
		RequestID: idStr,
	})
}

// AppError sends an error response shaped from an AppError, including its
// stable machine code, per-field errors and Retry-After header when set.
func AppError(c *gin.Context, e *apperror.AppError) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	if e.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(e.RetryAfter))
	}

	resp := Response{
		Success:   false,
		Message:   e.Message,
		Code:      e.ErrCode,
		RequestID: idStr,
	}
	if len(e.Fields) > 0 {
		resp.Errors = e.Fields
	}
	if e.RetryAfter > 0 {
		resp.Data = gin.H{"retryAfter": e.RetryAfter}
	}

	c.JSON(e.Code, resp)
}
