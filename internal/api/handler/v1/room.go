package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/request"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/response"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
)

type RoomService interface {
	CreateRoom(ctx context.Context, room domain.Room) (domain.Room, error)
	GetRoom(ctx context.Context, id uint) (domain.Room, error)
	ListRooms(ctx context.Context, filter repository.RoomFilter) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, room domain.Room) (domain.Room, error)
	SetMaintenance(ctx context.Context, roomID uint, on bool) (domain.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
}

type RoomOccupancyService interface {
	Assign(ctx context.Context, actor domain.Account, studentID, roomID uint) (domain.Room, domain.Student, error)
	Remove(ctx context.Context, actor domain.Account, studentID, roomID uint) (domain.Room, domain.Student, error)
}

type RoomHandler struct {
	svc    RoomService
	occSvc RoomOccupancyService
}

func NewRoomHandler(svc RoomService, occSvc RoomOccupancyService) *RoomHandler {
	return &RoomHandler{
		svc:    svc,
		occSvc: occSvc,
	}
}

// HandleCreateRoom godoc
// @Summary      Create a room
// @Tags         rooms
// @Produce      json
// @Param        request   body      request.CreateRoomRequest true "request body"
// @Success      201      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms [post]
// @Security     BearerToken
func (h *RoomHandler) HandleCreateRoom(ctx *gin.Context) {
	var req request.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	room, err := h.svc.CreateRoom(ctx.Request.Context(), domain.Room{
		Block:       req.Block,
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		RoomType:    req.RoomType,
		Facilities:  req.Facilities,
		Description: req.Description,
		Price:       req.Price,
		PricePeriod: req.PricePeriod,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNumberExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrRoomNumberExists))
		case errors.Is(err, service.ErrInvalidCapacity):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidCapacity))
		default:
			err = fmt.Errorf("v1.HandleCreateRoom -> h.svc.CreateRoom -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.Created(ctx, room)
}

// HandleListRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        block     query     string false "filter by block"
// @Param        floor     query     string false "filter by floor"
// @Param        status    query     string false "filter by status"
// @Param        room_type query     string false "filter by room type"
// @Success      200      {object}   response.Body
// @Failure      500      {object}   response.Err
// @Router       /rooms [get]
// @Security     BearerToken
func (h *RoomHandler) HandleListRooms(ctx *gin.Context) {
	filter := repository.RoomFilter{
		Block:    ctx.Query("block"),
		Floor:    ctx.Query("floor"),
		Status:   ctx.Query("status"),
		RoomType: ctx.Query("room_type"),
	}

	rooms, err := h.svc.ListRooms(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListRooms -> h.svc.ListRooms -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, rooms)
}

// HandleGetRoom godoc
// @Summary      Get a room with its occupants
// @Tags         rooms
// @Produce      json
// @Param        roomID   path       int  true "room ID"
// @Success      200      {object}   response.Body
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms/{roomID} [get]
// @Security     BearerToken
func (h *RoomHandler) HandleGetRoom(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "roomID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	room, err := h.svc.GetRoom(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetRoom -> h.svc.GetRoom -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, room)
}

// HandleUpdateRoom godoc
// @Summary      Update a room
// @Description  Edits room fields. Setting status to Maintenance evicts all
// @Description  occupants; setting it back to Available reopens the room.
// @Tags         rooms
// @Produce      json
// @Param        roomID   path       int  true "room ID"
// @Param        request   body      request.UpdateRoomRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms/{roomID} [put]
// @Security     BearerToken
func (h *RoomHandler) HandleUpdateRoom(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "roomID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateRoomRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	room, err := h.svc.UpdateRoom(ctx.Request.Context(), domain.Room{
		ID:          id,
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		RoomType:    req.RoomType,
		Facilities:  req.Facilities,
		Description: req.Description,
		Price:       req.Price,
		PricePeriod: req.PricePeriod,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.renderRoomUpdateErr(ctx, err)

		return
	}

	// A status change is an occupancy transition, not a field edit.
	if req.Status != "" && req.Status != string(room.Status) {
		room, err = h.svc.SetMaintenance(ctx.Request.Context(), id,
			req.Status == string(domain.RoomStatusMaintenance))
		if err != nil {
			h.renderRoomUpdateErr(ctx, err)

			return
		}
	}

	response.OK(ctx, room)
}

func (h *RoomHandler) renderRoomUpdateErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomNotFound))
	case errors.Is(err, service.ErrCapacityBelowOccupancy):
		response.RenderErr(ctx, response.ErrConflict(service.ErrCapacityBelowOccupancy))
	case errors.Is(err, service.ErrInvalidCapacity):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidCapacity))
	default:
		err = fmt.Errorf("v1.HandleUpdateRoom -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleDeleteRoom godoc
// @Summary      Delete a room
// @Description  Unassigns every occupant and cancels active allocations
// @Description  before removing the room.
// @Tags         rooms
// @Produce      json
// @Param        roomID   path       int  true "room ID"
// @Success      200      {object}   response.Body
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms/{roomID} [delete]
// @Security     BearerToken
func (h *RoomHandler) HandleDeleteRoom(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "roomID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteRoom(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoomNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRoom -> h.svc.DeleteRoom -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OKWithMessage(ctx, "room deleted", nil)
}

// HandleAssignStudent godoc
// @Summary      Assign a student to a room
// @Tags         rooms
// @Produce      json
// @Param        roomID   path       int  true "room ID"
// @Param        request   body      request.AssignStudentRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms/{roomID}/assign [post]
// @Security     BearerToken
func (h *RoomHandler) HandleAssignStudent(ctx *gin.Context) {
	roomID, err := parseIDParam(ctx, "roomID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.AssignStudentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, ok := currentAccount(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))

		return
	}

	room, student, err := h.occSvc.Assign(ctx.Request.Context(), actor, req.StudentID, roomID)
	if err != nil {
		renderOccupancyErr(ctx, err)

		return
	}

	response.OK(ctx, response.OccupancyResponse{Room: room, Student: student})
}

// HandleRemoveStudent godoc
// @Summary      Remove a student from a room
// @Tags         rooms
// @Produce      json
// @Param        roomID   path       int  true "room ID"
// @Param        request   body      request.AssignStudentRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /rooms/{roomID}/remove [post]
// @Security     BearerToken
func (h *RoomHandler) HandleRemoveStudent(ctx *gin.Context) {
	roomID, err := parseIDParam(ctx, "roomID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.AssignStudentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	actor, ok := currentAccount(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))

		return
	}

	room, student, err := h.occSvc.Remove(ctx.Request.Context(), actor, req.StudentID, roomID)
	if err != nil {
		renderOccupancyErr(ctx, err)

		return
	}

	response.OK(ctx, response.OccupancyResponse{Room: room, Student: student})
}
