package model

import "time"

// 1つのIdentity（会員 or ゲストセッション）につきカートは1つ
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int64    `gorm:"uniqueIndex" json:"user_id,omitempty"`
	SessionID *string   `gorm:"type:varchar(64);uniqueIndex" json:"session_id,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
