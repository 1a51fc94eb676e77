package handler

import (
	"net/http"
	"strconv"

	"restbucks/internal/domain/model"
	"restbucks/internal/linking"
	"restbucks/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	Name        string            `json:"name"`
	Quantity    int               `json:"quantity"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

type OrderCreateRequest struct {
	Location string             `json:"location,omitempty"`
	Items    []OrderItemRequest `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST(linking.Path(linking.RouteOrders), h.create).Name = linking.RouteOrders
	e.GET(linking.Path(linking.RouteOrder), h.detail).Name = linking.RouteOrder
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid body"))
	}

	loc, err := model.ParseLocation(req.Location)
	if err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid location"))
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Preferences: it.Preferences,
		})
	}

	out, err := h.uc.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		Location: loc,
		Items:    items,
	})
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, out.Location)
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	o, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}
