package model

import "time"

// 注文明細。名前・画像・単価は注文時点のスナップショットで、
// 以後のProduct変更の影響を受けない。
type OrderItem struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID              int64     `gorm:"not null;index" json:"order_id"`
	ProductID            *int64    `gorm:"index" json:"product_id,omitempty"`
	ProductNameSnapshot  string    `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductImageSnapshot string    `gorm:"type:text" json:"product_image"`
	UnitPriceSnapshot    int64     `gorm:"not null" json:"price"`
	Quantity             int64     `gorm:"not null" json:"quantity"`
	Subtotal             int64     `gorm:"not null" json:"subtotal"`
	CreatedAt            time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
