package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope: {"success": false, "message": ...}. The HTTP
// status mirrors the error kind; internal details are logged, never exposed.
type Err struct {
	StatusCode int `json:"-"`

	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newErr(statusCode int, err error) *Err {
	return &Err{
		StatusCode: statusCode,
		Success:    false,
		Message:    err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrNotFound(err error) *Err {
	return newErr(http.StatusNotFound, err)
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrForbidden(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Internal Server Error",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, err)
}
