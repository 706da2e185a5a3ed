package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// itemsはワイヤ互換のために受けるが、注文内容は保存済みカートが正。
type CreateOrderRequest struct {
	Items []struct {
		ProductID int64 `json:"product_id"`
		Quantity  int64 `json:"quantity"`
	} `json:"items"`
	Shipping      usecase.ShippingInput `json:"shipping"`
	PaymentMethod string                `json:"payment_method"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")

	//作成・個別参照はゲストでも可
	g.POST("", h.create, middleware.ResolveIdentity(cfg))
	g.GET("/:id", h.detail, middleware.ResolveIdentity(cfg))

	//一覧は会員のみ
	g.GET("", h.list, middleware.RequireAuth(cfg))
}

func (h *OrderHandler) create(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid body")
	}

	//二重送信防止キーはヘッダーから受け取る（bodyには入れない）
	idemKey := c.Request().Header.Get("X-Idempotency-Key")

	out, err := h.uc.Create(c.Request().Context(), ident, usecase.CreateOrderInput{
		Shipping:       req.Shipping,
		PaymentMethod:  req.PaymentMethod,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid id")
	}

	out, err := h.uc.GetByID(c.Request().Context(), id, ident.UserID)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeErrorMsg(c, http.StatusUnauthorized, "authentication required")
	}

	out, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return writeOK(c, http.StatusOK, out)
}
