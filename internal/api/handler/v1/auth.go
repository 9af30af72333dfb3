package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/request"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/handler/v1/response"
	"github.com/rahulpatel51/Hostel-Backend/internal/api/middleware"
	"github.com/rahulpatel51/Hostel-Backend/internal/config"
	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/pkg/jwthelper"
	"github.com/rahulpatel51/Hostel-Backend/internal/service"
)

type AuthService interface {
	SignupStudent(ctx context.Context, student domain.Student) (domain.Account, error)
	SignupWarden(ctx context.Context, warden domain.Warden) (domain.Account, error)
	SignupAdmin(ctx context.Context, account domain.Account, adminCode string) (domain.Account, error)
	SignupStaff(ctx context.Context, account domain.Account) (domain.Account, error)
	Login(ctx context.Context, email, password string) (domain.Account, error)
}

type AccountService interface {
	GetStudentByAccountID(ctx context.Context, accountID uint) (domain.Student, error)
	GetWardenByAccountID(ctx context.Context, accountID uint) (domain.Warden, error)
}

type AuthHandler struct {
	conf       *config.APIConfig
	svc        AuthService
	accountSvc AccountService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, accountSvc AccountService) *AuthHandler {
	return &AuthHandler{
		conf:       conf,
		svc:        svc,
		accountSvc: accountSvc,
	}
}

// HandleSignup godoc
// @Summary      Signup a new account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   response.Body
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	account := domain.Account{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	var (
		created domain.Account
		err     error
	)

	switch req.Role {
	case domain.RoleStudent:
		created, err = h.svc.SignupStudent(ctx.Request.Context(), domain.Student{
			Account: account,
			Course:  req.Course,
			Year:    req.Year,
		})

	case domain.RoleWarden:
		created, err = h.svc.SignupWarden(ctx.Request.Context(), domain.Warden{
			Account:       account,
			AssignedBlock: req.AssignedBlock,
		})

	case domain.RoleAdmin:
		created, err = h.svc.SignupAdmin(ctx.Request.Context(), account, req.AdminCode)

	case domain.RoleStaff:
		created, err = h.svc.SignupStaff(ctx.Request.Context(), account)

	default:
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid role")))

		return
	}

	if err != nil {
		if errors.Is(err, service.ErrAccountEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrAccountEmailExists))

			return
		}
		if errors.Is(err, service.ErrInvalidAdminCode) {
			response.RenderErr(ctx, response.ErrForbidden(service.ErrInvalidAdminCode))

			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.Body{
		Success: true,
		Data:    created,
	})
}

// HandleLogin godoc
// @Summary      Login an account
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.Body
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	account, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) ||
			errors.Is(err, service.ErrWrongPassword) ||
			errors.Is(err, service.ErrAccountDisabled) {
			response.RenderErr(ctx, response.ErrUnauthorized(errors.New("wrong credentials")))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	expiry := time.Duration(h.conf.JWTExpiryHours) * time.Hour
	token, err := jwthelper.GenerateToken(
		[]byte(h.conf.JWTSigningKey), account.ID, account.Role, ctx.Request.UserAgent(), expiry,
	)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	// The token rides both the body and an HTTP-only cookie.
	ctx.SetCookie(middleware.TokenCookieName, token, int(expiry.Seconds()), "/", "",
		h.conf.Environment == "production", true)

	response.OK(ctx, response.LoginResponse{
		Token:   token,
		Account: account,
	})
}

// HandleGetMe godoc
// @Summary      Get the authenticated account
// @Description  Returns the account, with the student or warden profile
// @Description  joined in for those roles.
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.Body
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/me [get]
// @Security     BearerToken
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	account, ok := currentAccount(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("not logged in")))

		return
	}

	switch account.Role {
	case domain.RoleStudent:
		student, err := h.accountSvc.GetStudentByAccountID(ctx.Request.Context(), account.ID)
		if err != nil {
			err = fmt.Errorf("v1.HandleGetMe -> h.accountSvc.GetStudentByAccountID -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}

		response.OK(ctx, student)

	case domain.RoleWarden:
		warden, err := h.accountSvc.GetWardenByAccountID(ctx.Request.Context(), account.ID)
		if err != nil {
			err = fmt.Errorf("v1.HandleGetMe -> h.accountSvc.GetWardenByAccountID -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}

		response.OK(ctx, warden)

	default:
		response.OK(ctx, account)
	}
}
