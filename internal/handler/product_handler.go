package handler

import (
	"net/http"
	"strconv"

	"restbucks/internal/linking"
	"restbucks/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET(linking.Path(linking.RouteProducts), h.list).Name = linking.RouteProducts
	e.GET(linking.Path(linking.RouteProduct), h.detail).Name = linking.RouteProduct
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	p, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
