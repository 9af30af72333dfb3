package v1

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/request"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/response"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/repository"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
)

type AllocationService interface {
	Allocate(ctx context.Context, actor domain.Account, allocation domain.Allocation) (domain.Allocation, error)
	Release(ctx context.Context, actor domain.Account, allocationID uint, status domain.AllocationStatus) (domain.Allocation, error)
	UpdatePaymentStatus(ctx context.Context, actor domain.Account, allocationID uint, paymentStatus domain.PaymentStatus) (domain.Allocation, error)
	GetAllocation(ctx context.Context, id uint) (domain.Allocation, error)
	ListAllocations(ctx context.Context, filter repository.AllocationFilter) ([]domain.Allocation, error)
}

type AllocationHandler struct {
	svc AllocationService
}

func NewAllocationHandler(svc AllocationService) *AllocationHandler {
	return &AllocationHandler{
		svc: svc,
	}
}

// HandleCreateAllocation godoc
// @Summary      Allocate a bed to a student
// @Description  Records a bed-level allocation and assigns the student to the
// @Description  room in the same transaction.
// @Tags         allocations
// @Produce      json
// @Param        request   body      request.CreateAllocationRequest true "request body"
// @Success      201      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /allocations [post]
// @Security     BearerToken
func (h *AllocationHandler) HandleCreateAllocation(ctx *gin.Context) {
	var req request.CreateAllocationRequest
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

	allocation := domain.Allocation{
		StudentID:     req.StudentID,
		RoomID:        req.RoomID,
		BedNumber:     req.BedNumber,
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	}
	if req.StartDate != nil {
		allocation.StartDate = *req.StartDate
	}

	created, err := h.svc.Allocate(ctx.Request.Context(), actor, allocation)
	if err != nil {
		renderOccupancyErr(ctx, err)

		return
	}

	response.Created(ctx, created)
}

// HandleReleaseAllocation godoc
// @Summary      Release an allocation
// @Description  Marks an active allocation Completed or Cancelled and removes
// @Description  the student from the room in the same transaction.
// @Tags         allocations
// @Produce      json
// @Param        allocationID path  int  true "allocation ID"
// @Param        request   body      request.ReleaseAllocationRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /allocations/{allocationID}/release [post]
// @Security     BearerToken
func (h *AllocationHandler) HandleReleaseAllocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "allocationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ReleaseAllocationRequest
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

	released, err := h.svc.Release(ctx.Request.Context(), actor, id, domain.AllocationStatus(req.Status))
	if err != nil {
		h.renderAllocationErr(ctx, "v1.HandleReleaseAllocation", err)

		return
	}

	response.OKWithMessage(ctx, "allocation released", released)
}

// HandleUpdatePayment godoc
// @Summary      Update an allocation's payment status
// @Tags         allocations
// @Produce      json
// @Param        allocationID path  int  true "allocation ID"
// @Param        request   body      request.UpdatePaymentRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /allocations/{allocationID}/payment [patch]
// @Security     BearerToken
func (h *AllocationHandler) HandleUpdatePayment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "allocationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdatePaymentRequest
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

	updated, err := h.svc.UpdatePaymentStatus(ctx.Request.Context(), actor, id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.renderAllocationErr(ctx, "v1.HandleUpdatePayment", err)

		return
	}

	response.OK(ctx, updated)
}

// HandleGetAllocation godoc
// @Summary      Get an allocation
// @Tags         allocations
// @Produce      json
// @Param        allocationID path  int  true "allocation ID"
// @Success      200      {object}   response.Body
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /allocations/{allocationID} [get]
// @Security     BearerToken
func (h *AllocationHandler) HandleGetAllocation(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "allocationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	allocation, err := h.svc.GetAllocation(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAllocationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAllocationNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetAllocation -> h.svc.GetAllocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, allocation)
}

// HandleListAllocations godoc
// @Summary      List allocations
// @Tags         allocations
// @Produce      json
// @Param        room_id    query    int    false "filter by room"
// @Param        student_id query    int    false "filter by student"
// @Param        status     query    string false "filter by status"
// @Success      200      {object}   response.Body
// @Failure      500      {object}   response.Err
// @Router       /allocations [get]
// @Security     BearerToken
func (h *AllocationHandler) HandleListAllocations(ctx *gin.Context) {
	filter := repository.AllocationFilter{
		Status: ctx.Query("status"),
	}
	if roomID, err := strconv.ParseUint(ctx.Query("room_id"), 10, 64); err == nil {
		filter.RoomID = uint(roomID)
	}
	if studentID, err := strconv.ParseUint(ctx.Query("student_id"), 10, 64); err == nil {
		filter.StudentID = uint(studentID)
	}

	allocations, err := h.svc.ListAllocations(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllocations -> h.svc.ListAllocations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, allocations)
}

func (h *AllocationHandler) renderAllocationErr(ctx *gin.Context, caller string, err error) {
	switch {
	case errors.Is(err, service.ErrAllocationNotFound):
		response.RenderErr(ctx, response.ErrNotFound(service.ErrAllocationNotFound))
	case errors.Is(err, service.ErrAllocationNotActive):
		response.RenderErr(ctx, response.ErrConflict(service.ErrAllocationNotActive))
	case errors.Is(err, service.ErrInvalidReleaseStatus):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidReleaseStatus))
	case errors.Is(err, service.ErrOccupancyForbidden):
		response.RenderErr(ctx, response.ErrForbidden(service.ErrOccupancyForbidden))
	case errors.Is(err, service.ErrStudentNotInRoom):
		response.RenderErr(ctx, response.ErrConflict(service.ErrStudentNotInRoom))
	default:
		err = fmt.Errorf("%s -> %w", caller, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
