package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/config"
	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey    = "user_id"    // int64
	CtxSessionIDKey = "session_id" // string

	// ゲストのセッションID受け渡しヘッダ。
	// リクエストで受け取り、ゲストには必ずレスポンスにも返す。
	SessionHeader = "X-Session-Id"
)

// ResolveIdentity は全カート/注文系エンドポイント用。
// 有効なBearerトークンがあれば会員、無ければ（壊れていても）ゲストに落とす。
func ResolveIdentity(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := parseBearer(c, cfg); ok {
				c.Set(CtxUserIDKey, userID)
				return next(c)
			}

			//トークン無し/不正はゲスト扱い
			sessionID := strings.TrimSpace(c.Request().Header.Get(SessionHeader))
			if sessionID == "" {
				sessionID = uuid.NewString()
			}
			c.Set(CtxSessionIDKey, sessionID)

			//クライアントが次回も同じカートを引けるように返す
			c.Response().Header().Set(SessionHeader, sessionID)

			return next(c)
		}
	}
}

// RequireAuth は会員必須エンドポイント用。ゲストへの降格はしない。
func RequireAuth(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("authentication required"))
			}

			userID, ok := parseBearer(c, cfg)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid or expired token"))
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

// IdentityFromContext はResolveIdentity/RequireAuthが入れた値を取り出す。
func IdentityFromContext(c echo.Context) model.Identity {
	var ident model.Identity
	if v, ok := c.Get(CtxUserIDKey).(int64); ok {
		ident.UserID = v
	}
	if v, ok := c.Get(CtxSessionIDKey).(string); ok {
		ident.SessionID = v
	}
	return ident
}

func UserIDFromContext(c echo.Context) (int64, bool) {
	v, ok := c.Get(CtxUserIDKey).(int64)
	return v, ok && v > 0
}

// Authorizationヘッダを検証してuserIDを返す。失敗は全てfalse。
func parseBearer(c echo.Context, cfg config.Config) (int64, bool) {
	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return 0, false
	}

	//Bearer形式か確認してtokenを抜く
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, false
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return 0, false
	}

	//JWTをパースして検証する
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	userID, err := parseUserID(claims["sub"])
	if err != nil || userID <= 0 {
		return 0, false
	}

	return userID, true
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Success: false, Error: msg}
}

// user_idをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
