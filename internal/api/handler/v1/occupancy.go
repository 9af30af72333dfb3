package v1

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/request"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/response"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
)

// OccupancyService is the coordinator behind the allocate/deallocate/transfer
// endpoints. Every call is a single all-or-nothing transition.
type OccupancyService interface {
	Assign(ctx context.Context, actor domain.Account, studentID, roomID uint) (domain.Room, domain.Student, error)
	Deallocate(ctx context.Context, actor domain.Account, studentID uint) (domain.Room, domain.Student, error)
	Transfer(ctx context.Context, actor domain.Account, studentID, fromRoomID, toRoomID uint) (domain.Room, domain.Student, error)
}

type OccupancyHandler struct {
	svc OccupancyService
}

func NewOccupancyHandler(svc OccupancyService) *OccupancyHandler {
	return &OccupancyHandler{
		svc: svc,
	}
}

// HandleAllocate godoc
// @Summary      Allocate a room to a student
// @Tags         room-allocation
// @Produce      json
// @Param        request   body      request.AllocateRoomRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-allocation/allocate [post]
// @Security     BearerToken
func (h *OccupancyHandler) HandleAllocate(ctx *gin.Context) {
	var req request.AllocateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, ok := currentAccount(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))

		return
	}

	room, student, err := h.svc.Assign(ctx.Request.Context(), actor, req.StudentID, req.RoomID)
	if err != nil {
		renderOccupancyErr(ctx, err)

		return
	}

	response.OKWithMessage(ctx, "room allocated", response.OccupancyResponse{Room: room, Student: student})
}

// HandleDeallocate godoc
// @Summary      Deallocate a student's current room
// @Tags         room-allocation
// @Produce      json
// @Param        request   body      request.DeallocateRoomRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-allocation/deallocate [post]
// @Security     BearerToken
func (h *OccupancyHandler) HandleDeallocate(ctx *gin.Context) {
	var req request.DeallocateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, ok := currentAccount(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))

		return
	}

	room, student, err := h.svc.Deallocate(ctx.Request.Context(), actor, req.StudentID)
	if err != nil {
		renderOccupancyErr(ctx, err)

		return
	}

	response.OKWithMessage(ctx, "room deallocated", response.OccupancyResponse{Room: room, Student: student})
}

// HandleTransfer godoc
// @Summary      Transfer a student between rooms
// @Description  Moves the student out of the source room and into the target
// @Description  room as one transaction. A failed transfer leaves the
// @Description  original assignment untouched.
// @Tags         room-allocation
// @Produce      json
// @Param        request   body      request.TransferRoomRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /room-allocation/transfer [post]
// @Security     BearerToken
func (h *OccupancyHandler) HandleTransfer(ctx *gin.Context) {
	var req request.TransferRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, ok := currentAccount(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))

		return
	}

	room, student, err := h.svc.Transfer(ctx.Request.Context(), actor, req.StudentID, req.FromRoomID, req.ToRoomID)
	if err != nil {
		renderOccupancyErr(ctx, err)

		return
	}

	response.OKWithMessage(ctx, "room transferred", response.OccupancyResponse{Room: room, Student: student})
}
