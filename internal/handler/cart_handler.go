package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// 会員でもゲストでも使えるのでResolveIdentityを通す
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.ResolveIdentity(cfg))

	g.GET("", h.getCart)
	g.POST("/add", h.addItem)
	g.PUT("/update", h.updateItem)
	g.DELETE("/:productId", h.removeItem)
	g.DELETE("", h.clearCart)
}

func (h *CartHandler) getCart(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	out, err := h.uc.GetCart(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	out, err := h.uc.AddItem(c.Request().Context(), ident, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid body")
	}

	out, err := h.uc.UpdateItem(c.Request().Context(), ident, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid product id")
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), ident, productID)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	out, err := h.uc.ClearCart(c.Request().Context(), ident)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}
