package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（取得・検索）だけを約束。
// ストアフロントに更新系は無い。Createはシード用。
type ProductRepository interface {
	List(ctx context.Context, category string) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Search(ctx context.Context, q string) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
}
