package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-hanka/fit-studio/internal/domain"
	"github.com/go-hanka/fit-studio/pkg/tokenpkg"
	"github.com/go-hanka/fit-studio/pkg/web"
)

// ErrForbidden indicates that the authenticated user lacks the required role.
var ErrForbidden = errors.New("insufficient permissions")

// RoleChecker resolves the authenticated principal to its stored role.
//
//go:generate mockgen -source role.go -destination role_mock.go -package middleware
type RoleChecker interface {
	Get(ctx context.Context, username string) (domain.UserWithoutPassword, error)
}

// RoleRequired gates a route group to users holding the given role.
// Must run after AuthMiddleware.
func RoleRequired(users RoleChecker, role string) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := gctx.Request.Context()
		l := zerolog.Ctx(ctx)

		payload := gctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)

		user, err := users.Get(ctx, payload.Username)
		if err != nil {
			l.Warn().Err(err).Send()
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

			return
		}

		if user.Role != role {
			gctx.AbortWithStatusJSON(http.StatusForbidden, web.Error(ErrForbidden))

			return
		}

		gctx.Next()
	}
}
