package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	domain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	customerdomain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/dto"
	"github.com/BruksfildServices01/customer-service/internal/observability"
	"github.com/BruksfildServices01/customer-service/internal/security"
	"github.com/BruksfildServices01/customer-service/internal/validators"
)

// ======================================================
// USE CASE
// ======================================================

type IssueToken struct {
	customers customerdomain.Repository
	tokens    domain.TokenStore
	signer    *security.TokenService
	audit     *audit.Dispatcher
	metrics   *observability.Metrics
	logger    *zap.Logger
}

func NewIssueToken(
	customers customerdomain.Repository,
	tokens domain.TokenStore,
	signer *security.TokenService,
	audit *audit.Dispatcher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *IssueToken {
	return &IssueToken{
		customers: customers,
		tokens:    tokens,
		signer:    signer,
		audit:     audit,
		metrics:   metrics,
		logger:    logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *IssueToken) Execute(
	ctx context.Context,
	username string,
	password string,
) (*dto.TokenResponse, error) {

	email := validators.NormalizeEmail(username)

	// --------------------------------------------------
	// 1️⃣ Credenciais
	// --------------------------------------------------
	c, err := uc.customers.FindByEmail(ctx, email)
	if err != nil || c.HashedPassword == nil || !security.VerifyPassword(password, *c.HashedPassword) {
		uc.logger.Warn("invalid credentials", zap.String("username", email))
		uc.metrics.IncrAuth("invalid_credentials")
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionLoginFailed,
			Metadata: map[string]any{"username": email},
		})
		return nil, domain.ErrInvalidCredentials
	}

	// --------------------------------------------------
	// 2️⃣ Token assinado + registro do jti
	// --------------------------------------------------
	jti := uuid.NewString()
	token, expiresAt, err := uc.signer.Issue(jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(c.ID), 10),
		"jti": jti,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.tokens.Save(ctx, jti, c.ID, expiresAt); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.metrics.IncrAuth("token_issued")
	uc.audit.Dispatch(audit.Event{
		CustomerID: &c.ID,
		Action:     audit.ActionTokenIssued,
		Entity:     audit.EntityCustomer,
		EntityID:   &c.ID,
	})

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   dto.TokenTypeBearer,
		CustomerID:  c.ID,
	}, nil
}
