package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mmqops/booking-api/internal/api/handler/v1/response"
	"github.com/mmqops/booking-api/internal/api/middleware"
	"github.com/mmqops/booking-api/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      plain
// @Success      200 {string} string "."
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, ".")
}

func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	rawID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrWrongCredentials(errors.New("not authenticated"))
	}

	userID, ok := rawID.(uint)
	if !ok {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("unexpected user ID type %T", rawID))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("svc.GetUser -> %w", err))
	}

	return user, nil
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	return parseUintValue(name, ctx.Param(name))
}

func parseUintQuery(ctx *gin.Context, name string) (uint, error) {
	return parseUintValue(name, ctx.Query(name))
}

func parseUintValue(name, raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%v must be a positive integer", name)
	}

	return uint(parsed), nil
}
