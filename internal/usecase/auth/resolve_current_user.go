package auth

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
	customerdomain "github.com/BruksfildServices01/customer-service/internal/domain/customer"
	"github.com/BruksfildServices01/customer-service/internal/models"
	"github.com/BruksfildServices01/customer-service/internal/security"
)

// CurrentUser is the customer a bearer token resolved to.
type CurrentUser struct {
	Customer *models.Customer
	TokenID  string
}

type ResolveCurrentUser struct {
	customers customerdomain.Repository
	tokens    domain.TokenStore
	signer    *security.TokenService
	logger    *zap.Logger
}

func NewResolveCurrentUser(
	customers customerdomain.Repository,
	tokens domain.TokenStore,
	signer *security.TokenService,
	logger *zap.Logger,
) *ResolveCurrentUser {
	return &ResolveCurrentUser{
		customers: customers,
		tokens:    tokens,
		signer:    signer,
		logger:    logger,
	}
}

// Execute fails with ErrUnauthorized for any token that does not lead to an
// existing customer through an active token record.
func (uc *ResolveCurrentUser) Execute(
	ctx context.Context,
	token string,
) (*CurrentUser, error) {

	claims, err := uc.signer.Verify(token)
	if err != nil {
		uc.logger.Debug("token rejected", zap.Error(err))
		return nil, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrUnauthorized
	}
	customerID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, domain.ErrUnauthorized
	}

	active, err := uc.tokens.IsActive(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("check token: %w", err)
	}
	if !active {
		return nil, domain.ErrUnauthorized
	}

	c, err := uc.customers.FindByID(ctx, uint(customerID))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return &CurrentUser{Customer: c, TokenID: jti}, nil
}
