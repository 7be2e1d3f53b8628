package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmqops/booking-api/internal/api/handler/v1/request"
	"github.com/mmqops/booking-api/internal/api/handler/v1/response"
	"github.com/mmqops/booking-api/internal/cache"
	"github.com/mmqops/booking-api/internal/domain"
	"github.com/mmqops/booking-api/internal/service"
)

type ScheduleService interface {
	ListMonth(ctx context.Context, month string) ([]domain.ScheduleEvent, error)
	CountsForMonth(ctx context.Context, month string) (map[string]int, error)
	EventsForSlot(ctx context.Context, date, venue string, band domain.TimeBand) ([]domain.ScheduleEvent, error)
	Create(ctx context.Context, event domain.ScheduleEvent, confirmOverwrite bool) (domain.ScheduleEvent, error)
	Update(ctx context.Context, event domain.ScheduleEvent, confirmOverwrite bool) (domain.ScheduleEvent, error)
	Get(ctx context.Context, id uint) (domain.ScheduleEvent, error)
	Cancel(ctx context.Context, id uint) error
	Uncancel(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type ScheduleHandler struct {
	svc   ScheduleService
	cache *cache.Cache
}

func NewScheduleHandler(svc ScheduleService, c *cache.Cache) *ScheduleHandler {
	return &ScheduleHandler{
		svc:   svc,
		cache: c,
	}
}

// HandleListMonth godoc
// @Summary      List a month's schedule events
// @Tags         schedule
// @Produce      json
// @Param        month  query     string true "month as YYYY-MM"
// @Success      200    {array}   domain.ScheduleEvent
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /schedule [get]
// @Security BearerAuth
func (h *ScheduleHandler) HandleListMonth(ctx *gin.Context) {
	month := ctx.Query("month")

	events, err := h.svc.ListMonth(ctx.Request.Context(), month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleListMonth -> h.svc.ListMonth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCounts godoc
// @Summary      Category counters for a month
// @Tags         schedule
// @Produce      json
// @Param        month  query     string true "month as YYYY-MM"
// @Success      200    {object}  map[string]int
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /schedule/counts [get]
// @Security BearerAuth
func (h *ScheduleHandler) HandleCounts(ctx *gin.Context) {
	month := ctx.Query("month")

	counts, err := h.svc.CountsForMonth(ctx.Request.Context(), month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCounts -> h.svc.CountsForMonth -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, counts)
}

// HandleEventsForSlot godoc
// @Summary      Events occupying one slot
// @Description  Resolves a (date, venue, band) cell, including floating private requests.
// @Tags         schedule
// @Produce      json
// @Param        date   query     string true "date as YYYY-MM-DD"
// @Param        venue  query     string true "venue identifier"
// @Param        band   query     string true "morning, afternoon or evening"
// @Success      200    {array}   domain.ScheduleEvent
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /schedule/slot [get]
// @Security BearerAuth
func (h *ScheduleHandler) HandleEventsForSlot(ctx *gin.Context) {
	date := ctx.Query("date")
	venue := ctx.Query("venue")
	band := domain.TimeBand(ctx.Query("band"))

	events, err := h.svc.EventsForSlot(ctx.Request.Context(), date, venue, band)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBand) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleEventsForSlot -> h.svc.EventsForSlot -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateEvent godoc
// @Summary      Create a schedule event
// @Description  Returns 409 with the occupant's details when the slot is taken; resubmit with confirm_overwrite to replace it.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        request  body      request.ScheduleEventRequest true "request body"
// @Success      201      {object}  domain.ScheduleEvent
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.SlotConflict
// @Failure      500      {object}  response.Err
// @Router       /schedule [post]
// @Security BearerAuth
func (h *ScheduleHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.ScheduleEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain(), req.ConfirmOverwrite)
	if err != nil {
		var conflict *service.SlotConflictError
		if errors.As(err, &conflict) {
			ctx.AbortWithStatusJSON(http.StatusConflict, response.NewSlotConflict(conflict.Existing))
			return
		}
		if errors.Is(err, service.ErrOverCapacity) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.cache.InvalidateAll(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update a schedule event
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Param        request  body      request.ScheduleEventRequest true "request body"
// @Success      200      {object}  domain.ScheduleEvent
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.SlotConflict
// @Failure      500      {object}  response.Err
// @Router       /schedule/{eventID} [put]
// @Security BearerAuth
func (h *ScheduleHandler) HandleUpdateEvent(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.ScheduleEventRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event := req.ToDomain()
	event.ID = eventID

	updated, err := h.svc.Update(ctx.Request.Context(), event, req.ConfirmOverwrite)
	if err != nil {
		var conflict *service.SlotConflictError
		if errors.As(err, &conflict) {
			ctx.AbortWithStatusJSON(http.StatusConflict, response.NewSlotConflict(conflict.Existing))
			return
		}
		if errors.Is(err, service.ErrScheduleEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("schedule event", "ID", eventID))
			return
		}
		if errors.Is(err, service.ErrOverCapacity) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.cache.InvalidateAll(ctx.Request.Context())
	ctx.JSON(http.StatusOK, updated)
}

// HandleCancelEvent godoc
// @Summary      Cancel a schedule event
// @Tags         schedule
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      204      {object}  nil
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /schedule/{eventID}/cancel [post]
// @Security BearerAuth
func (h *ScheduleHandler) HandleCancelEvent(ctx *gin.Context) {
	h.setCancelled(ctx, true)
}

// HandleUncancelEvent godoc
// @Summary      Restore a cancelled schedule event
// @Tags         schedule
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      204      {object}  nil
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /schedule/{eventID}/uncancel [post]
// @Security BearerAuth
func (h *ScheduleHandler) HandleUncancelEvent(ctx *gin.Context) {
	h.setCancelled(ctx, false)
}

func (h *ScheduleHandler) setCancelled(ctx *gin.Context, cancelled bool) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if cancelled {
		err = h.svc.Cancel(ctx.Request.Context(), eventID)
	} else {
		err = h.svc.Uncancel(ctx.Request.Context(), eventID)
	}
	if err != nil {
		if errors.Is(err, service.ErrScheduleEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("schedule event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.setCancelled -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.cache.InvalidateAll(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}

// HandleDeleteEvent godoc
// @Summary      Delete a schedule event permanently
// @Tags         schedule
// @Produce      json
// @Param        eventID  path      int true "event ID"
// @Success      204      {object}  nil
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /schedule/{eventID} [delete]
// @Security BearerAuth
func (h *ScheduleHandler) HandleDeleteEvent(ctx *gin.Context) {
	eventID, err := parseUintParam(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.Delete(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrScheduleEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("schedule event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.cache.InvalidateAll(ctx.Request.Context())
	ctx.Status(http.StatusNoContent)
}
