package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmqops/booking-api/internal/api/handler/v1/response"
	"github.com/mmqops/booking-api/internal/config"
	"github.com/mmqops/booking-api/internal/domain"
)

type InventoryService interface {
	RunCheck(ctx context.Context) (domain.ConsistencyReport, error)
}

// InventoryHandler exposes the on-demand consistency check. Callers must be
// an admin user or present the shared service key, since a run rewrites
// participant counters.
type InventoryHandler struct {
	conf    *config.APIConfig
	svc     InventoryService
	userSvc UserService
}

func NewInventoryHandler(conf *config.APIConfig, svc InventoryService, userSvc UserService) *InventoryHandler {
	return &InventoryHandler{
		conf:    conf,
		svc:     svc,
		userSvc: userSvc,
	}
}

// HandleRunCheck godoc
// @Summary      Run the inventory consistency check now
// @Description  Compares each event's participant counter with its reservations, fixes drift and reports the result.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  response.CheckResult
// @Failure      400  {object}  response.CheckResult
// @Failure      403  {object}  response.Err
// @Router       /inventory/check [post]
// @Security BearerAuth
func (h *InventoryHandler) HandleRunCheck(ctx *gin.Context) {
	if !h.authorized(ctx) {
		response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("admin role or service key required")))
		return
	}

	report, err := h.svc.RunCheck(ctx.Request.Context())
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, response.CheckResult{
		Success:           true,
		ConsistencyReport: report,
	})
}

func (h *InventoryHandler) authorized(ctx *gin.Context) bool {
	if key := ctx.GetHeader("X-Service-Key"); key != "" && key == h.conf.ServiceKey {
		return true
	}

	user, errResp := getUserFromContext(ctx, h.userSvc)
	if errResp != nil {
		return false
	}

	return user.Role == domain.RoleAdmin
}
