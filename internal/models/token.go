package models

import "time"

// Token records an issued access token by its jti so it can be revoked.
type Token struct {
	ID     uint     `gorm:"primaryKey" json:"id"`
	Token  string   `gorm:"size:64;uniqueIndex;not null" json:"token"`
	IsUsed bool     `gorm:"default:false;not null" json:"is_used"`
	UserID uint     `gorm:"index;not null" json:"user_id"`
	User   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:UserID" json:"-"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
