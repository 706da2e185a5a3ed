package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/logger"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth       *handler.AuthHandler
	Product    *handler.ProductHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	Newsletter *handler.NewsletterHandler
}

// New はechoを組み立ててルートを登録する。
func New(cfg config.Config, log *logger.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAuthorization,
			appmw.SessionHeader,
			"X-Idempotency-Key",
		},
		ExposeHeaders: []string{appmw.SessionHeader},
	}))

	RegisterRoutes(e, cfg, h)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
