package v1

import (
	"net/http"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(healthUC usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{healthUC: healthUC}
}

// Check godoc
// @Summary      Health Check
// @Description  Liveness probe; verifies persistence-store connectivity when configured.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	statuses, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		response.Error(c, http.StatusServiceUnavailable, "Service degraded", statuses)
		return
	}
	response.Success(c, http.StatusOK, "System operational", statuses)
}
