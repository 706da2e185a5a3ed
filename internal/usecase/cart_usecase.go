package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 合計は保存せず、読むたびに商品の現在価格から計算し直す。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int64              `json:"total_items"`
	TotalPrice int64              `json:"total_price"`
}

// GetCart はカート取得（無ければ作って空を返す）。空カートはエラーにしない。
func (u *CartUsecase) GetCart(ctx context.Context, ident model.Identity) (CartResponse, error) {
	if !ident.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}

	cart, err := u.cartRepo.GetOrCreateByIdentity(ctx, ident)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// AddItem はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddItem(ctx context.Context, ident model.Identity, productID int64, quantity int64) (CartResponse, error) {
	if !ident.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.GetOrCreateByIdentity(ctx, ident)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpsertAdd(ctx, cart.ID, productID, quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// UpdateItem は数量の置き換え。0は削除と同じ。
// カートに無い商品の更新は何もしない（エラーにしない）。
func (u *CartUsecase) UpdateItem(ctx context.Context, ident model.Identity, productID int64, quantity int64) (CartResponse, error) {
	if !ident.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if quantity < 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.GetOrCreateByIdentity(ctx, ident)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if quantity == 0 {
		err = u.cartItemRepo.DeleteByProduct(ctx, cart.ID, productID)
	} else {
		err = u.cartItemRepo.SetQuantity(ctx, cart.ID, productID, quantity)
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// RemoveItem は明細削除。無くてもエラーにしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, ident model.Identity, productID int64) (CartResponse, error) {
	if !ident.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.cartRepo.GetOrCreateByIdentity(ctx, ident)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.DeleteByProduct(ctx, cart.ID, productID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// ClearCart は明細を全削除。
func (u *CartUsecase) ClearCart(ctx context.Context, ident model.Identity) (CartResponse, error) {
	if !ident.Valid() {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}

	cart, err := u.cartRepo.GetOrCreateByIdentity(ctx, ident)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.Clear(ctx, cart.ID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart.ID)
}

// cartIDの明細を商品と突き合わせてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cartID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartLineResponse, 0, len(items))
	var totalItems int64 = 0
	var totalPrice int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			//商品が消えた明細は表示しない
			continue
		}

		subtotal := p.Price * it.Quantity
		respItems = append(respItems, CartLineResponse{
			ProductID: it.ProductID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Subtotal:  subtotal,
		})

		totalItems += it.Quantity
		totalPrice += subtotal
	}

	return CartResponse{Items: respItems, TotalItems: totalItems, TotalPrice: totalPrice}, nil
}
