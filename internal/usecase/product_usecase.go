package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// List はカテゴリ絞り込み付き一覧。"All"は全件の番兵。
func (u *ProductUsecase) List(ctx context.Context, category string) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Categories は登録カテゴリ一覧の先頭に"All"を付けて返す。
func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	categories, err := u.productRepo.ListCategories(ctx)
	if err != nil {
		return []string{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return append([]string{"All"}, categories...), nil
}

// Search は名前・説明の部分一致検索。
func (u *ProductUsecase) Search(ctx context.Context, q string) ([]model.Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "q required")
	}
	if len(q) > 100 {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	items, err := u.productRepo.Search(ctx, q)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
