package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// カテゴリ絞り込み付き一覧。"All" と空は全件。新しい順。
func (r *ProductGormRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if category != "" && category != "All" {
		tx = tx.Where("category = ?", category)
	}

	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 名前 or 説明の部分一致（大文字小文字を区別しない）
func (r *ProductGormRepository) Search(ctx context.Context, q string) ([]model.Product, error) {
	var products []model.Product

	like := "%" + strings.TrimSpace(q) + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", like, like).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// 登録済みカテゴリの一覧（重複なし・名前順）
func (r *ProductGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string

	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return []string{}, err
	}

	return categories, nil
}

// 商品の作成（シード用）
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}
