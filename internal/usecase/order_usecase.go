package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// OrderUsecase は注文の作成と参照。
// 作成はカート読み取り→注文作成→カート空にする、までを1トランザクションで行う。
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type ShippingInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type CreateOrderInput struct {
	Shipping       ShippingInput
	PaymentMethod  string
	IdempotencyKey string
}

type OrderItemOutput struct {
	ProductID *int64 `json:"product_id,omitempty"`
	Name      string `json:"product_name"`
	Image     string `json:"product_image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	OrderNumber   string            `json:"order_number"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	TotalAmount   int64             `json:"total_amount"`
	Shipping      ShippingInput     `json:"shipping"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	Items         []OrderItemOutput `json:"items"`
}

// Create は保存済みカートを正として注文を確定する。
// リクエストのitemsは見ない（カートと食い違う余地を残さない）。
func (u *OrderUsecase) Create(ctx context.Context, ident model.Identity, in CreateOrderInput) (OrderOutput, error) {
	if !ident.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}
	if err := validateShipping(in.Shipping); err != nil {
		return OrderOutput{}, err
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if len(key) > 255 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 同じキーなら同じ注文を返す
		if key != "" {
			existing, found, err := r.Orders().FindByIdempotencyKey(ctx, key)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if found {
				items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(existing, items)
				return nil
			}
		}

		//カート取得
		cart, err := r.Carts().FindByIdentity(ctx, ident)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		//明細の商品を現在価格でスナップショット
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total int64 = 0
		now := time.Now()

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			subtotal := p.Price * ci.Quantity
			pid := p.ID
			orderItems = append(orderItems, model.OrderItem{
				ProductID:            &pid,
				ProductNameSnapshot:  p.Name,
				ProductImageSnapshot: p.Image,
				UnitPriceSnapshot:    p.Price,
				Quantity:             ci.Quantity,
				Subtotal:             subtotal,
				CreatedAt:            now,
			})
			total += subtotal
		}

		order := model.Order{
			OrderNumber:        generateOrderNumber(),
			Status:             model.OrderStatusPending,
			PaymentStatus:      model.PaymentStatusPending,
			TotalAmount:        total,
			ShippingFirstName:  in.Shipping.FirstName,
			ShippingLastName:   in.Shipping.LastName,
			ShippingEmail:      in.Shipping.Email,
			ShippingAddress:    in.Shipping.Address,
			ShippingCity:       in.Shipping.City,
			ShippingPostalCode: in.Shipping.PostalCode,
			ShippingCountry:    in.Shipping.Country,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if ident.IsUser() {
			uid := ident.UserID
			order.UserID = &uid
		}
		if in.Shipping.State != "" {
			s := in.Shipping.State
			order.ShippingState = &s
		}
		if in.Shipping.Phone != "" {
			p := in.Shipping.Phone
			order.ShippingPhone = &p
		}
		if in.PaymentMethod != "" {
			pm := in.PaymentMethod
			order.PaymentMethod = &pm
		}
		if key != "" {
			order.IdempotencyKey = &key
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			//同時に同じキーが入った場合はもう一度引いて同じ結果を返す
			if key != "" {
				ex, found, err2 := r.Orders().FindByIdempotencyKey(ctx, key)
				if err2 == nil && found {
					items, err3 := r.OrderItems().ListByOrderID(ctx, ex.ID)
					if err3 != nil {
						return NewHTTPError(http.StatusInternalServerError, "db error")
					}
					out = toOrderOutput(ex, items)
					return nil
				}
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//元のカートを空にして二重注文を防ぐ
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		for i := range orderItems {
			orderItems[i].OrderID = orderID
		}
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// GetByID は注文詳細。userIDが指定されたら所有者一致を要求し、
// 他人の注文は「存在しない扱い」にする（403では返さない）。
func (u *OrderUsecase) GetByID(ctx context.Context, orderID int64, userID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if userID > 0 && (o.UserID == nil || *o.UserID != userID) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListByUser は自分の注文一覧（新しい順）。
func (u *OrderUsecase) ListByUser(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// UpdateStatus は状態遷移（管理側オペレーション）。
// 許可されない遷移は400で拒否する。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, next model.OrderStatus) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !next.IsValid() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !o.Status.CanTransitionTo(next) {
			return NewHTTPError(http.StatusBadRequest, "invalid status transition")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, next); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
}

func validateShipping(s ShippingInput) error {
	if strings.TrimSpace(s.FirstName) == "" {
		return NewHTTPError(http.StatusBadRequest, "shipping first_name required")
	}
	if strings.TrimSpace(s.LastName) == "" {
		return NewHTTPError(http.StatusBadRequest, "shipping last_name required")
	}
	if !IsEmailLike(strings.TrimSpace(s.Email)) {
		return NewHTTPError(http.StatusBadRequest, "invalid shipping email")
	}
	if strings.TrimSpace(s.Address) == "" {
		return NewHTTPError(http.StatusBadRequest, "shipping address required")
	}
	if strings.TrimSpace(s.City) == "" {
		return NewHTTPError(http.StatusBadRequest, "shipping city required")
	}
	if strings.TrimSpace(s.PostalCode) == "" {
		return NewHTTPError(http.StatusBadRequest, "shipping postal_code required")
	}
	if strings.TrimSpace(s.Country) == "" {
		return NewHTTPError(http.StatusBadRequest, "shipping country required")
	}
	return nil
}

const orderNumberRandLen = 5

// ORD-<base36ミリ秒>-<乱数5桁> を大文字で。DBのユニーク制約が最後の砦。
func generateOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	const chars = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, orderNumberRandLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			//crypto/randが死ぬ環境は想定しない
			panic(err)
		}
		suffix[i] = chars[n.Int64()]
	}

	return strings.ToUpper("ORD-" + ts + "-" + string(suffix))
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Image:     it.ProductImageSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}

	out := OrderOutput{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		TotalAmount:   o.TotalAmount,
		Shipping: ShippingInput{
			FirstName:  o.ShippingFirstName,
			LastName:   o.ShippingLastName,
			Email:      o.ShippingEmail,
			Address:    o.ShippingAddress,
			City:       o.ShippingCity,
			PostalCode: o.ShippingPostalCode,
			Country:    o.ShippingCountry,
		},
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
	if o.ShippingState != nil {
		out.Shipping.State = *o.ShippingState
	}
	if o.ShippingPhone != nil {
		out.Shipping.Phone = *o.ShippingPhone
	}
	if o.PaymentMethod != nil {
		out.PaymentMethod = *o.PaymentMethod
	}
	return out
}
