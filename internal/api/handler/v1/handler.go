package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/response"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/middleware"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200 {string} string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func currentAccount(ctx *gin.Context) (domain.Account, bool) {
	value, exists := ctx.Get(middleware.ContextKeyAccount)
	if !exists {
		return domain.Account{}, false
	}

	account, ok := value.(domain.Account)

	return account, ok
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

// renderOccupancyErr maps the coordinator's error taxonomy onto HTTP.
// NotFound → 404, Conflict → 409, InvalidState → 400, Forbidden → 403.
func renderOccupancyErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound) || errors.Is(err, service.ErrRoomNotFound):
		response.RenderErr(ctx, response.ErrNotFound(unwrapLeaf(err)))
	case errors.Is(err, service.ErrRoomFull) ||
		errors.Is(err, service.ErrStudentAlreadyAssigned) ||
		errors.Is(err, service.ErrStudentNotInRoom) ||
		errors.Is(err, service.ErrBedOccupied) ||
		errors.Is(err, service.ErrBedOutOfRange):
		response.RenderErr(ctx, response.ErrConflict(unwrapLeaf(err)))
	case errors.Is(err, service.ErrRoomUnderMaintenance):
		response.RenderErr(ctx, response.ErrBadRequest(unwrapLeaf(err)))
	case errors.Is(err, service.ErrOccupancyForbidden):
		response.RenderErr(ctx, response.ErrForbidden(unwrapLeaf(err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// unwrapLeaf strips the "caller -> callee" wrapping so clients see the
// sentinel message, not the internal call chain.
func unwrapLeaf(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
