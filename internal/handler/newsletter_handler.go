package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type NewsletterHandler struct {
	uc *usecase.NewsletterUsecase
}

func NewNewsletterHandler(uc *usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{uc: uc}
}

type NewsletterRequest struct {
	Email string `json:"email"`
}

func (h *NewsletterHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/newsletter")

	g.POST("/subscribe", h.subscribe)
	g.POST("/unsubscribe", h.unsubscribe)
}

func (h *NewsletterHandler) subscribe(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid body")
	}

	msg, err := h.uc.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusCreated, msg)
}

func (h *NewsletterHandler) unsubscribe(c echo.Context) error {
	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return writeErrorMsg(c, http.StatusBadRequest, "invalid body")
	}

	msg, err := h.uc.Unsubscribe(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return writeMessage(c, http.StatusOK, msg)
}
