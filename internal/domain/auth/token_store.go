package auth

import (
	"context"
	"time"
)

// TokenStore keeps the issued token ids so a token can be used only until revoked.
type TokenStore interface {
	Save(
		ctx context.Context,
		jti string,
		customerID uint,
		expiresAt time.Time,
	) error

	// IsActive is false for unknown, revoked or expired ids.
	IsActive(
		ctx context.Context,
		jti string,
	) (bool, error)

	Revoke(
		ctx context.Context,
		jti string,
	) error
}
