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

type ReservationService interface {
	Create(ctx context.Context, reservation domain.Reservation) (domain.Reservation, error)
	ListByEvent(ctx context.Context, eventID uint) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id uint, status domain.ReservationStatus) (domain.Reservation, error)
	LinkToEvent(ctx context.Context, id, eventID uint) (domain.Reservation, error)
}

type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{
		svc: svc,
	}
}

// HandleCreateReservation godoc
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateReservationRequest true "request body"
// @Success      201      {object}  domain.Reservation
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reservations [post]
// @Security BearerAuth
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	var req request.CreateReservationRequest
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
		if errors.Is(err, service.ErrInvalidParticipantCount) || errors.Is(err, service.ErrReservationEventMissing) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateReservation -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListReservationsByEvent godoc
// @Summary      List reservations attached to one schedule event
// @Tags         reservations
// @Produce      json
// @Param        eventID  query     int true "schedule event ID"
// @Success      200      {array}   domain.Reservation
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /reservations [get]
// @Security BearerAuth
func (h *ReservationHandler) HandleListReservationsByEvent(ctx *gin.Context) {
	eventID, err := parseUintQuery(ctx, "eventID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reservations, err := h.svc.ListByEvent(ctx.Request.Context(), eventID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListReservationsByEvent -> h.svc.ListByEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleUpdateReservationStatus godoc
// @Summary      Update a reservation's lifecycle status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservationID  path      int true "reservation ID"
// @Param        request        body      request.UpdateReservationStatusRequest true "request body"
// @Success      200            {object}  domain.Reservation
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID}/status [put]
// @Security BearerAuth
func (h *ReservationHandler) HandleUpdateReservationStatus(ctx *gin.Context) {
	reservationID, err := parseUintParam(ctx, "reservationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateReservationStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateStatus(ctx.Request.Context(), reservationID, domain.ReservationStatus(req.Status))
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", reservationID))
			return
		}
		if errors.Is(err, service.ErrInvalidReservationStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateReservationStatus -> h.svc.UpdateStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleLinkReservation godoc
// @Summary      Link an unlinked reservation to a schedule event
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        reservationID  path      int true "reservation ID"
// @Param        request        body      request.LinkReservationRequest true "request body"
// @Success      200            {object}  domain.Reservation
// @Failure      400            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /reservations/{reservationID}/link [post]
// @Security BearerAuth
func (h *ReservationHandler) HandleLinkReservation(ctx *gin.Context) {
	reservationID, err := parseUintParam(ctx, "reservationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.LinkReservationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	linked, err := h.svc.LinkToEvent(ctx.Request.Context(), reservationID, req.ScheduleEventID)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", reservationID))
			return
		}
		if errors.Is(err, service.ErrReservationAlreadyLinked) || errors.Is(err, service.ErrReservationEventMissing) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleLinkReservation -> h.svc.LinkToEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, linked)
}
