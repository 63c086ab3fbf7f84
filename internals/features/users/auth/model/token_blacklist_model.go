package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds revoked access tokens until they expire; a daily
// cleanup job removes rows whose expiry is past the TTL.
type TokenBlacklist struct {
	TokenBlacklistID        uuid.UUID      `gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"column:token_blacklist_token;type:text;not null;index" json:"-"`
	TokenBlacklistExpiredAt time.Time      `gorm:"column:token_blacklist_expired_at;not null;index" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"column:token_blacklist_created_at;not null;default:now()" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
