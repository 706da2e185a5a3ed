package validator

import (
	"context"
	"net/http"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// サインアップの入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	// email形式
	if !usecase.IsEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	// パスワード最低文字数（MVP: 8）
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters")
	}

	// email重複チェック（DBが必要）
	u, err := v.users.FindByEmail(ctx, email)
	if err == nil && u != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "email already registered")
	}

	return nil
}

// ログインの入力を検証（存在チェックはusecase側）
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	return nil
}
