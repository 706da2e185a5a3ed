package model

import "time"

type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:password_hash;not null"`
	FirstName    *string `gorm:"type:varchar(100)"`
	LastName     *string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
