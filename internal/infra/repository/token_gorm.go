package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/customer-service/internal/domain/auth"
	"github.com/BruksfildServices01/customer-service/internal/models"
)

// TokenGormStore keeps issued tokens in the tokens table.
type TokenGormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTokenGormStore(db *gorm.DB) *TokenGormStore {
	return &TokenGormStore{db: db, now: time.Now}
}

func (s *TokenGormStore) Save(
	ctx context.Context,
	jti string,
	customerID uint,
	expiresAt time.Time,
) error {
	return s.db.WithContext(ctx).Create(&models.Token{
		Token:     jti,
		UserID:    customerID,
		ExpiresAt: expiresAt,
	}).Error
}

func (s *TokenGormStore) IsActive(
	ctx context.Context,
	jti string,
) (bool, error) {

	var tok models.Token
	err := s.db.WithContext(ctx).
		Where("token = ?", jti).
		First(&tok).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return !tok.IsUsed && s.now().Before(tok.ExpiresAt), nil
}

func (s *TokenGormStore) Revoke(
	ctx context.Context,
	jti string,
) error {
	return s.db.WithContext(ctx).
		Model(&models.Token{}).
		Where("token = ?", jti).
		Update("is_used", true).Error
}

// PurgeExpired deletes records whose token can no longer verify anyway.
func (s *TokenGormStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at < ?", s.now()).
		Delete(&models.Token{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ auth.TokenStore = (*TokenGormStore)(nil)
