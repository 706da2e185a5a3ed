package model

import "time"

// emailごとに1行。再購読はフラグを立て直すだけで行は増やさない。
type NewsletterSubscription struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Subscribed bool      `gorm:"not null;default:true" json:"subscribed"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
