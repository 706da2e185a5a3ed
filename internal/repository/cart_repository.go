package repository

import (
	"app/internal/domain/model"
	"context"
)

type CartRepository interface {
	// Identityのカートを取得し、無ければ作成
	GetOrCreateByIdentity(ctx context.Context, ident model.Identity) (model.Cart, error)
	FindByIdentity(ctx context.Context, ident model.Identity) (model.Cart, error)
	// カートの明細を全削除
	Clear(ctx context.Context, cartID int64) error
}

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	// 同一商品は数量加算
	UpsertAdd(ctx context.Context, cartID int64, productID int64, addQty int64) error
	// 数量の置き換え。明細が無ければErrNotFound
	SetQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error
	// 明細削除。無ければErrNotFound
	DeleteByProduct(ctx context.Context, cartID int64, productID int64) error
}
