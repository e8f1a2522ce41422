package v1

import (
	"net/http"
	"time"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	intakeUC domain.IntakeUsecase
}

// NewMessageHandler registers the public submission route (no auth required).
// The contact-specific rate limiter runs before the handler.
func NewMessageHandler(public *gin.RouterGroup, intakeUC domain.IntakeUsecase, contactLimiter gin.HandlerFunc) {
	handler := &MessageHandler{
		intakeUC: intakeUC,
	}

	public.POST("/messages", contactLimiter, handler.SubmitMessage)
}

// SubmitMessage godoc
// @Summary      Submit Contact Form
// @Description  Receive a message from the public contact/careers form. Accepts either firstName/lastName or a combined name, and message or content for the body.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      domain.SubmissionInput  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /messages [post]
func (h *MessageHandler) SubmitMessage(c *gin.Context) {
	var input domain.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	meta := domain.ClientMeta{
		IP:         c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
		Referrer:   c.GetHeader("Referer"),
		ReceivedAt: time.Now().UTC(),
	}
	rec := domain.NormalizeSubmission(input, meta)

	receipt, err := h.intakeUC.Submit(c.Request.Context(), rec)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", receipt)
}
