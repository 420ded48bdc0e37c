package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	"github.com/BruksfildServices01/customer-service/internal/dto"
	"github.com/BruksfildServices01/customer-service/internal/httperr"
	"github.com/BruksfildServices01/customer-service/internal/httpresp"
	"github.com/BruksfildServices01/customer-service/internal/middleware"
	ucAuth "github.com/BruksfildServices01/customer-service/internal/usecase/auth"
)

type AuthHandler struct {
	issue  *ucAuth.IssueToken
	revoke *ucAuth.RevokeToken
	logger *zap.Logger
}

func NewAuthHandler(
	issue *ucAuth.IssueToken,
	revoke *ucAuth.RevokeToken,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		issue:  issue,
		revoke: revoke,
		logger: logger,
	}
}

// --------- Requests ---------

// TokenRequest is the OAuth2 password-grant form; username carries the email.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		validationError(c, err)
		return
	}

	resp, err := h.issue.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httperr.BadRequest(c, MsgInvalidCredentials)
			return
		}
		internalError(c, h.logger, "error issuing token", err)
		return
	}

	httpresp.OK(c, resp)
}

// Me returns the customer owning the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	httpresp.OK(c, dto.FromCustomer(user.Customer))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.revoke.Execute(c.Request.Context(), user); err != nil {
		internalError(c, h.logger, "error revoking token", err)
		return
	}

	httpresp.NoContent(c)
}
