package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
)

// Body is the success envelope: {"success": true, "message": ..., "data": ...}.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Body{
		Success: true,
		Data:    data,
	})
}

func OKWithMessage(ctx *gin.Context, message string, data interface{}) {
	ctx.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, Body{
		Success: true,
		Data:    data,
	})
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Account domain.Account `json:"account"`
}

// OccupancyResponse pairs the updated room and student returned by
// assignment operations.
type OccupancyResponse struct {
	Room    domain.Room    `json:"room"`
	Student domain.Student `json:"student"`
}
