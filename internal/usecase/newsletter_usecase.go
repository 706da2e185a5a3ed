package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type NewsletterUsecase struct {
	subs repo.NewsletterRepository
}

func NewNewsletterUsecase(subs repo.NewsletterRepository) *NewsletterUsecase {
	return &NewsletterUsecase{subs: subs}
}

// Subscribe は購読登録。
// 解除済みのemailなら行を増やさずフラグを立て直す。
func (u *NewsletterUsecase) Subscribe(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	existing, err := u.subs.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err == nil {
		if existing.Subscribed {
			return "", NewHTTPError(http.StatusBadRequest, "email already subscribed")
		}

		//再購読
		if err := u.subs.SetSubscribed(ctx, existing.ID, true); err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return "successfully re-subscribed to newsletter", nil
	}

	now := time.Now()
	sub := model.NewsletterSubscription{
		Email:      email,
		Subscribed: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.subs.Create(ctx, sub); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return "successfully subscribed to newsletter", nil
}

// Unsubscribe は購読解除。未登録のemailは404。
func (u *NewsletterUsecase) Unsubscribe(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	existing, err := u.subs.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return "", NewHTTPError(http.StatusNotFound, "email not found")
	}
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.subs.SetSubscribed(ctx, existing.ID, false); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return "successfully unsubscribed from newsletter", nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !IsEmailLike(email) {
		return "", NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	return email, nil
}
