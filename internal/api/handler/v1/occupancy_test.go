package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/middleware"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
)

type stubOccupancyService struct {
	err error
}

func (s *stubOccupancyService) Assign(context.Context, domain.Account, uint, uint) (domain.Room, domain.Student, error) {
	return domain.Room{ID: 101}, domain.Student{}, s.err
}

func (s *stubOccupancyService) Deallocate(context.Context, domain.Account, uint) (domain.Room, domain.Student, error) {
	return domain.Room{ID: 101}, domain.Student{}, s.err
}

func (s *stubOccupancyService) Transfer(context.Context, domain.Account, uint, uint, uint) (domain.Room, domain.Student, error) {
	return domain.Room{ID: 102}, domain.Student{}, s.err
}

func newOccupancyTestRouter(svc OccupancyService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyAccount, domain.Account{ID: 1, Role: domain.RoleAdmin})
	})

	handler := NewOccupancyHandler(svc)
	router.POST("/room-allocation/allocate", handler.HandleAllocate)
	router.POST("/room-allocation/deallocate", handler.HandleDeallocate)
	router.POST("/room-allocation/transfer", handler.HandleTransfer)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestOccupancyHandler_HandleAllocate(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		body       string
		wantStatus int
	}{
		{
			name:       "allocates",
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"student_id":7}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "student not found",
			svcErr:     service.ErrStudentNotFound,
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "room not found",
			svcErr:     service.ErrRoomNotFound,
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "room full",
			svcErr:     service.ErrRoomFull,
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already assigned",
			svcErr:     service.ErrStudentAlreadyAssigned,
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "under maintenance",
			svcErr:     service.ErrRoomUnderMaintenance,
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "forbidden role",
			svcErr:     service.ErrOccupancyForbidden,
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unexpected failure",
			svcErr:     errors.New("connection reset"),
			body:       `{"student_id":7,"room_id":101}`,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newOccupancyTestRouter(&stubOccupancyService{err: tt.svcErr})

			recorder := postJSON(t, router, "/room-allocation/allocate", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestOccupancyHandler_HandleAllocate_Envelope(t *testing.T) {
	router := newOccupancyTestRouter(&stubOccupancyService{})

	recorder := postJSON(t, router, "/room-allocation/allocate", `{"student_id":7,"room_id":101}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Room domain.Room `json:"room"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "room allocated", body.Message)
	assert.Equal(t, uint(101), body.Data.Room.ID)
}

func TestOccupancyHandler_HandleAllocate_ErrorEnvelope(t *testing.T) {
	router := newOccupancyTestRouter(&stubOccupancyService{err: service.ErrRoomFull})

	recorder := postJSON(t, router, "/room-allocation/allocate", `{"student_id":7,"room_id":101}`)

	require.Equal(t, http.StatusConflict, recorder.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, service.ErrRoomFull.Error(), body.Message)
}

func TestOccupancyHandler_HandleDeallocate(t *testing.T) {
	router := newOccupancyTestRouter(&stubOccupancyService{err: service.ErrStudentNotInRoom})

	recorder := postJSON(t, router, "/room-allocation/deallocate", `{"student_id":7}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestOccupancyHandler_HandleTransfer(t *testing.T) {
	router := newOccupancyTestRouter(&stubOccupancyService{})

	recorder := postJSON(t, router, "/room-allocation/transfer",
		`{"student_id":7,"from_room_id":101,"to_room_id":102}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestOccupancyHandler_HandleTransfer_SameRoom(t *testing.T) {
	router := newOccupancyTestRouter(&stubOccupancyService{})

	recorder := postJSON(t, router, "/room-allocation/transfer",
		`{"student_id":7,"from_room_id":101,"to_room_id":101}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
