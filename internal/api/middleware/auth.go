package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rahulpatel51/Hostel-Backend/internal/domain"
	"github.com/rahulpatel51/Hostel-Backend/internal/pkg/jwthelper"
)

const (
	// TokenCookieName is the cookie the login handler sets; the verifier
	// accepts it as a fallback to the Authorization header.
	TokenCookieName = "token"

	ContextKeyAccountID = "accountID"
	ContextKeyAccount   = "account"
)

type AccountGetter interface {
	GetAccount(ctx context.Context, id uint) (domain.Account, error)
}

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT accepts a bearer token or the token cookie, validates it and
// stores the account id for downstream handlers.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)
		if tokenString == "" {
			abortUnauthorized(ctx, "not authorized to access this route")

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			abortUnauthorized(ctx, "invalid token")

			return
		}

		ctx.Set(ContextKeyAccountID, claims.AccountID)
		ctx.Next()
	}
}

// LoadAccount resolves the authenticated account and rejects tokens whose
// account no longer exists or has been disabled.
func LoadAccount(accounts AccountGetter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accountID := ctx.GetUint(ContextKeyAccountID)

		account, err := accounts.GetAccount(ctx.Request.Context(), accountID)
		if err != nil {
			abortUnauthorized(ctx, "account no longer exists")

			return
		}
		if !account.IsActive {
			abortUnauthorized(ctx, "account is disabled")

			return
		}

		ctx.Set(ContextKeyAccount, account)
		ctx.Next()
	}
}

// RequireRoles gates a route group to the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, exists := ctx.Get(ContextKeyAccount)
		if !exists {
			abortUnauthorized(ctx, "not authorized to access this route")

			return
		}

		account := value.(domain.Account)
		for _, role := range roles {
			if account.Role == role {
				ctx.Next()

				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "role " + account.Role + " is not authorized to access this route",
		})
	}
}

func extractToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := ctx.Cookie(TokenCookieName)
	if err == nil {
		return cookie
	}

	return ""
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
