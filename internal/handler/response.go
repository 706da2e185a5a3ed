package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全レスポンス共通の封筒
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeOK(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Data: data})
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, SuccessResponse{Success: true, Message: message})
}

func writeErrorMsg(c echo.Context, status int, msg string) error {
	return c.JSON(status, ErrorResponse{Success: false, Error: msg})
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return writeErrorMsg(c, he.Status, he.Message)
	}

	//500。内部事情は漏らさない
	return writeErrorMsg(c, http.StatusInternalServerError, "internal error")
}
