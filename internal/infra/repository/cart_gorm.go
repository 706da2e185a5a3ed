package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func identityScope(tx *gorm.DB, ident model.Identity) *gorm.DB {
	if ident.IsUser() {
		return tx.Where("user_id = ?", ident.UserID)
	}
	return tx.Where("session_id = ?", ident.SessionID)
}

// Identityのカートを取得し、無ければ作成
func (r *CartGormRepository) GetOrCreateByIdentity(ctx context.Context, ident model.Identity) (model.Cart, error) {
	var cart model.Cart

	//トランザクションで探す→無ければ作る
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := identityScope(tx.Clauses(clause.Locking{Strength: "UPDATE"}), ident).
			Order("id desc").
			First(&cart).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無ければ作る
		now := time.Now()
		newCart := model.Cart{
			CreatedAt: now,
			UpdatedAt: now,
		}
		if ident.IsUser() {
			uid := ident.UserID
			newCart.UserID = &uid
		} else {
			sid := ident.SessionID
			newCart.SessionID = &sid
		}

		//INSERT失敗後もtxを使い続けられるようSAVEPOINTで囲む
		createErr := tx.Transaction(func(tx2 *gorm.DB) error {
			return tx2.Create(&newCart).Error
		})
		if createErr != nil {
			//同時作成でユニーク制約に当たったら取り直す
			retryErr := identityScope(tx, ident).Order("id desc").First(&cart).Error
			if retryErr == nil {
				return nil
			}
			return createErr
		}

		cart = newCart
		return nil
	})

	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// Identityのカートを取得
func (r *CartGormRepository) FindByIdentity(ctx context.Context, ident model.Identity) (model.Cart, error) {
	var cart model.Cart

	err := identityScope(r.db.WithContext(ctx), ident).
		Order("id desc").
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 指定カートの明細を全削除
func (r *CartGormRepository) Clear(ctx context.Context, cartID int64) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
