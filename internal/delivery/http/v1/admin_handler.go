package v1

import (
	"net/http"
	"strconv"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the message triage routes on the authenticated
// group.
func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{
		adminUC: adminUC,
	}

	protected.GET("/messages", handler.ListMessages)
	protected.GET("/messages/:id", handler.GetMessage)
	protected.PATCH("/messages/:id/status", handler.UpdateStatus)
}

// ListMessages godoc
// @Summary      List Messages
// @Description  Paginated list of received submissions, optionally filtered by triage status.
// @Tags         admin
// @Produce      json
// @Param        status  query     string  false  "Filter by status (new, in_progress, resolved, spam)"
// @Param        limit   query     int     false  "Page size (default 20, max 100)"
// @Param        offset  query     int     false  "Offset"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /messages [get]
func (h *AdminHandler) ListMessages(c *gin.Context) {
	status := domain.MessageStatus(c.Query("status"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, total, err := h.adminUC.ListMessages(c.Request.Context(), status, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", gin.H{
		"messages": messages,
		"total":    total,
	})
}

// GetMessage godoc
// @Summary      Get Message
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Message ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages/{id} [get]
func (h *AdminHandler) GetMessage(c *gin.Context) {
	rec, err := h.adminUC.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message retrieved", rec)
}

type updateStatusRequest struct {
	Status domain.MessageStatus `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update Message Status
// @Description  Moves a message through triage (new, in_progress, resolved, spam).
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "Message ID"
// @Param        status  body  updateStatusRequest  true  "New Status"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	if err := h.adminUC.UpdateMessageStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated", nil)
}
