package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	"github.com/BruksfildServices01/customer-service/internal/httperr"
	"github.com/BruksfildServices01/customer-service/internal/observability"
	ucAuth "github.com/BruksfildServices01/customer-service/internal/usecase/auth"
)

const (
	ContextCurrentUser = "currentUser"

	MsgUnauthorized = "Credenciais inválidas ou expiradas"
)

func AuthMiddleware(
	resolve *ucAuth.ResolveCurrentUser,
	metrics *observability.Metrics,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			metrics.IncrAuth("missing_token")
			httperr.Unauthorized(c, MsgUnauthorized)
			return
		}

		user, err := resolve.Execute(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				metrics.IncrAuth("rejected_token")
				httperr.Unauthorized(c, MsgUnauthorized)
				return
			}
			logger.Error("error resolving current user", zap.Error(err))
			httperr.Internal(c)
			return
		}

		c.Set(ContextCurrentUser, user)
		c.Next()
	}
}

// CurrentUser returns the user set by AuthMiddleware. It panics on routes
// registered without it.
func CurrentUser(c *gin.Context) *ucAuth.CurrentUser {
	return c.MustGet(ContextCurrentUser).(*ucAuth.CurrentUser)
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
