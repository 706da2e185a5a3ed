package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限。ストアフロントなので長め。
const accessTokenTTL = 7 * 24 * time.Hour

const bcryptCost = 10

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, email string, password string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

type UserDTO struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type AuthResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	users repo.UserRepository,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		users:     users,
		validator: validator,
	}
}

// Register は会員登録してトークンも発行する（登録直後からログイン状態）。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if err := u.validator.ValidateRegister(ctx, email, in.Password); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return AuthResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := time.Now()
	user := model.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if v := strings.TrimSpace(in.FirstName); v != "" {
		user.FirstName = &v
	}
	if v := strings.TrimSpace(in.LastName); v != "" {
		user.LastName = &v
	}

	if err := u.users.Create(ctx, &user); err != nil {
		//ユニーク制約に当たった競合もここに落ちる
		return AuthResult{}, NewHTTPError(http.StatusBadRequest, "email already registered")
	}

	token, err := u.issueToken(user.ID, now)
	if err != nil {
		return AuthResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return AuthResult{User: toUserDTO(&user), Token: token}, nil
}

// Login はemail/passwordを検証してトークンを発行する。
// 「emailが無い」か「passwordが違う」かは呼び出し側に区別させない。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	if err := u.validator.ValidateLogin(ctx, email, in.Password); err != nil {
		return AuthResult{}, err
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return AuthResult{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return AuthResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return AuthResult{}, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := u.issueToken(user.ID, time.Now())
	if err != nil {
		return AuthResult{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return AuthResult{User: toUserDTO(user), Token: token}, nil
}

// Profile は自分のユーザー情報（ハッシュは絶対に返さない）。
func (u *AuthUsecase) Profile(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "identity required")
	}

	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserDTO{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) issueToken(userID int64, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}

func toUserDTO(user *model.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
