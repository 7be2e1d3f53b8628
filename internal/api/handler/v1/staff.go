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

type StaffService interface {
	List(ctx context.Context) ([]domain.Staff, error)
	Get(ctx context.Context, id uint) (domain.Staff, error)
	Create(ctx context.Context, staff domain.Staff) (domain.Staff, error)
	Update(ctx context.Context, staff domain.Staff) (domain.Staff, error)
}

type StaffHandler struct {
	svc StaffService
}

func NewStaffHandler(svc StaffService) *StaffHandler {
	return &StaffHandler{
		svc: svc,
	}
}

// HandleListStaff godoc
// @Summary      List staff members
// @Tags         staff
// @Produce      json
// @Success      200  {array}   domain.Staff
// @Failure      500  {object}  response.Err
// @Router       /staff [get]
// @Security BearerAuth
func (h *StaffHandler) HandleListStaff(ctx *gin.Context) {
	staff, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStaff -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// HandleGetStaff godoc
// @Summary      Fetch one staff member
// @Tags         staff
// @Produce      json
// @Param        staffID  path      int true "staff ID"
// @Success      200      {object}  domain.Staff
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /staff/{staffID} [get]
// @Security BearerAuth
func (h *StaffHandler) HandleGetStaff(ctx *gin.Context) {
	staffID, err := parseUintParam(ctx, "staffID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	staff, err := h.svc.Get(ctx.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("staff", "ID", staffID))
			return
		}

		err = fmt.Errorf("v1.HandleGetStaff -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, staff)
}

// HandleCreateStaff godoc
// @Summary      Create a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        request  body      request.StaffRequest true "request body"
// @Success      201      {object}  domain.Staff
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /staff [post]
// @Security BearerAuth
func (h *StaffHandler) HandleCreateStaff(ctx *gin.Context) {
	var req request.StaffRequest
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
		err = fmt.Errorf("v1.HandleCreateStaff -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateStaff godoc
// @Summary      Update a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        staffID  path      int true "staff ID"
// @Param        request  body      request.StaffRequest true "request body"
// @Success      200      {object}  domain.Staff
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /staff/{staffID} [put]
// @Security BearerAuth
func (h *StaffHandler) HandleUpdateStaff(ctx *gin.Context) {
	staffID, err := parseUintParam(ctx, "staffID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.StaffRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	staff := req.ToDomain()
	staff.ID = staffID

	updated, err := h.svc.Update(ctx.Request.Context(), staff)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("staff", "ID", staffID))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateStaff -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
