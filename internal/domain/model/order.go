package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 前進のみ。delivered / cancelled は終端。
// cancelled へは pending / processing からだけ行ける。
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range orderStatusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// 注文ヘッダ。作成後はstatus以外は不変。
// ゲスト注文は user_id が NULL になる。
type Order struct {
	ID                 int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             *int64        `gorm:"index" json:"user_id,omitempty"`
	OrderNumber        string        `gorm:"type:varchar(40);not null;uniqueIndex" json:"order_number"`
	Status             OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus      PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	TotalAmount        int64         `gorm:"not null" json:"total_amount"`
	ShippingFirstName  string        `gorm:"type:varchar(100);not null" json:"shipping_first_name"`
	ShippingLastName   string        `gorm:"type:varchar(100);not null" json:"shipping_last_name"`
	ShippingEmail      string        `gorm:"type:varchar(255);not null" json:"shipping_email"`
	ShippingAddress    string        `gorm:"type:text;not null" json:"shipping_address"`
	ShippingCity       string        `gorm:"type:varchar(100);not null" json:"shipping_city"`
	ShippingState      *string       `gorm:"type:varchar(100)" json:"shipping_state,omitempty"`
	ShippingPostalCode string        `gorm:"type:varchar(20);not null" json:"shipping_postal_code"`
	ShippingCountry    string        `gorm:"type:varchar(100);not null" json:"shipping_country"`
	ShippingPhone      *string       `gorm:"type:varchar(30)" json:"shipping_phone,omitempty"`
	PaymentMethod      *string       `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	IdempotencyKey     *string       `gorm:"type:varchar(255);uniqueIndex" json:"-"`
	CreatedAt          time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
