package repository

import (
	"app/internal/domain/model"
	"context"
)

type NewsletterRepository interface {
	FindByEmail(ctx context.Context, email string) (model.NewsletterSubscription, error)
	Create(ctx context.Context, sub model.NewsletterSubscription) error
	SetSubscribed(ctx context.Context, id int64, subscribed bool) error
}
