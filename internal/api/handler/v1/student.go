package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/request"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/response"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
)

type StudentService interface {
	GetStudent(ctx context.Context, id uint) (domain.Student, error)
	ListStudents(ctx context.Context) ([]domain.Student, error)
	UpdateProfile(ctx context.Context, student domain.Student) (domain.Student, error)
}

type StudentHandler struct {
	svc StudentService
}

func NewStudentHandler(svc StudentService) *StudentHandler {
	return &StudentHandler{
		svc: svc,
	}
}

// HandleListStudents godoc
// @Summary      List students with their current rooms
// @Tags         students
// @Produce      json
// @Success      200  {object}  response.Body
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /students [get]
func (h *StudentHandler) HandleListStudents(ctx *gin.Context) {
	students, err := h.svc.ListStudents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStudents -> h.svc.ListStudents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, students)
}

// HandleGetStudent godoc
// @Summary      Get a student with room details
// @Tags         students
// @Produce      json
// @Param        studentID   path      int  true  "student ID"
// @Success      200  {object}  response.Body
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /students/{studentID} [get]
func (h *StudentHandler) HandleGetStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "studentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid student ID")))

		return
	}

	student, err := h.svc.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStudentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetStudent -> h.svc.GetStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, student)
}

// HandleUpdateStudent godoc
// @Summary      Update a student profile
// @Tags         students
// @Produce      json
// @Param        studentID   path      int                          true  "student ID"
// @Param        request     body      request.UpdateStudentRequest true  "request body"
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /students/{studentID} [put]
func (h *StudentHandler) HandleUpdateStudent(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "studentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid student ID")))

		return
	}

	var req request.UpdateStudentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	student := domain.Student{
		Course: req.Course,
		Year:   req.Year,
	}
	student.ID = id
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Phone = req.Phone

	updated, err := h.svc.UpdateProfile(ctx.Request.Context(), student)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrStudentNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStudent -> h.svc.UpdateProfile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.OK(ctx, updated)
}
