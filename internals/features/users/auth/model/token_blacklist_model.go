package model

import (
	"time"

	"github.com/google/uuid"
)

/* ==============================
   MODEL — token_blacklists
   Diisi saat logout; dicek oleh auth middleware.
============================== */

type TokenBlacklistModel struct {
	TokenBlacklistID    uuid.UUID `gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"token_blacklist_id"`
	TokenBlacklistToken string    `gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex" json:"-"`

	// Setelah lewat, row boleh dibersihkan — token-nya sudah expired sendiri.
	TokenBlacklistExpiredAt time.Time `gorm:"column:token_blacklist_expired_at;type:timestamptz;not null;index" json:"token_blacklist_expired_at"`

	TokenBlacklistCreatedAt time.Time `gorm:"column:token_blacklist_created_at;type:timestamptz;not null;default:now()" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
