package handler

import (
	"net/http"

	"restbucks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 400系の理由をそのまま載せるヘッダー
const HeaderReasonPhrase = "ReasonPhrase"

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		if he.Status >= 400 && he.Status < 500 {
			c.Response().Header().Set(HeaderReasonPhrase, he.Message)
		}
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
