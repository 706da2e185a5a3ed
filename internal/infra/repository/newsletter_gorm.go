package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type NewsletterGormRepository struct {
	db *gorm.DB
}

func NewNewsletterGormRepository(db *gorm.DB) *NewsletterGormRepository {
	return &NewsletterGormRepository{db: db}
}

func (r *NewsletterGormRepository) FindByEmail(ctx context.Context, email string) (model.NewsletterSubscription, error) {
	var sub model.NewsletterSubscription
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.NewsletterSubscription{}, repo.ErrNotFound
	}
	if err != nil {
		return model.NewsletterSubscription{}, err
	}
	return sub, nil
}

func (r *NewsletterGormRepository) Create(ctx context.Context, sub model.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(&sub).Error
}

func (r *NewsletterGormRepository) SetSubscribed(ctx context.Context, id int64, subscribed bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.NewsletterSubscription{}).
		Where("id = ?", id).
		Update("subscribed", subscribed)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
