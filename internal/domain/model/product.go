package model

import "time"

// ストアフロントからは読み取り専用（登録はシード/管理プロセス側）
type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         int64     `gorm:"not null" json:"price"`
	OriginalPrice *int64    `gorm:"column:original_price" json:"original_price,omitempty"`
	Image         string    `gorm:"type:text" json:"image"`
	Category      string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Badge         *string   `gorm:"type:varchar(50)" json:"badge,omitempty"`
	Rating        float64   `gorm:"not null;default:0" json:"rating"`
	Reviews       int64     `gorm:"not null;default:0" json:"reviews"`
	Stock         int64     `gorm:"not null;default:0" json:"stock"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
