package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmqops/booking-api/internal/api/handler/v1/request"
	"github.com/mmqops/booking-api/internal/api/handler/v1/response"
	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/service"
)

type ScenarioService interface {
	List(ctx context.Context) ([]domain.Scenario, error)
	Get(ctx context.Context, id uint) (domain.Scenario, error)
	Create(ctx context.Context, scenario domain.Scenario) (domain.Scenario, error)
	Reconcile(ctx context.Context, dryRun bool) (service.ReconcileResult, error)
}

type ScenarioHandler struct {
	svc ScenarioService
}

func NewScenarioHandler(svc ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		svc: svc,
	}
}

// HandleListScenarios godoc
// @Summary      List the scenario catalogue
// @Tags         scenarios
// @Produce      json
// @Success      200  {array}   domain.Scenario
// @Failure      500  {object}  response.Err
// @Router       /scenarios [get]
// @Security BearerAuth
func (h *ScenarioHandler) HandleListScenarios(ctx *gin.Context) {
	scenarios, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListScenarios -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, scenarios)
}

// HandleGetScenario godoc
// @Summary      Fetch one scenario
// @Tags         scenarios
// @Produce      json
// @Param        scenarioID  path      int true "scenario ID"
// @Success      200         {object}  domain.Scenario
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /scenarios/{scenarioID} [get]
// @Security BearerAuth
func (h *ScenarioHandler) HandleGetScenario(ctx *gin.Context) {
	scenarioID, err := parseUintParam(ctx, "scenarioID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	scenario, err := h.svc.Get(ctx.Request.Context(), scenarioID)
	if err != nil {
		if errors.Is(err, service.ErrScenarioNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("scenario", "ID", scenarioID))
			return
		}

		err = fmt.Errorf("v1.HandleGetScenario -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, scenario)
}

// HandleCreateScenario godoc
// @Summary      Create a scenario
// @Tags         scenarios
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateScenarioRequest true "request body"
// @Success      201      {object}  domain.Scenario
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /scenarios [post]
// @Security BearerAuth
func (h *ScenarioHandler) HandleCreateScenario(ctx *gin.Context) {
	var req request.CreateScenarioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateScenario -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleReconcileScenarios godoc
// @Summary      Link events to scenarios by fuzzy title match
// @Description  Scans non-cancelled events that carry a scenario name but no scenario link. Pass dry_run=true to preview.
// @Tags         scenarios
// @Produce      json
// @Param        dry_run  query     bool false "report without updating"
// @Success      200      {object}  service.ReconcileResult
// @Failure      500      {object}  response.Err
// @Router       /scenarios/reconcile [post]
// @Security BearerAuth
func (h *ScenarioHandler) HandleReconcileScenarios(ctx *gin.Context) {
	dryRun := ctx.Query("dry_run") == "true"

	result, err := h.svc.Reconcile(ctx.Request.Context(), dryRun)
	if err != nil {
		err = fmt.Errorf("v1.HandleReconcileScenarios -> h.svc.Reconcile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
