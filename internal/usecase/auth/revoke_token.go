package auth

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/customer-service/internal/audit"
	domain "github.com/BruksfildServices01/customer-service/internal/domain/auth"
)

type RevokeToken struct {
	tokens domain.TokenStore
	audit  *audit.Dispatcher
}

func NewRevokeToken(tokens domain.TokenStore, audit *audit.Dispatcher) *RevokeToken {
	return &RevokeToken{tokens: tokens, audit: audit}
}

func (uc *RevokeToken) Execute(ctx context.Context, user *CurrentUser) error {
	if err := uc.tokens.Revoke(ctx, user.TokenID); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		CustomerID: &user.Customer.ID,
		Action:     audit.ActionTokenRevoked,
		Entity:     audit.EntityCustomer,
		EntityID:   &user.Customer.ID,
	})
	return nil
}
