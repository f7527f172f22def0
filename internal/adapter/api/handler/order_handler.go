package handler

import (
	"github.com/labstack/echo/v4"

	"mlbbstore/internal/usecase"
	"mlbbstore/pkg/errors"
	"mlbbstore/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	AccountID string `json:"account_id" validate:"required"`
	BuyerName string `json:"buyer_name" validate:"required"`
	Whatsapp  string `json:"whatsapp" validate:"required"`
	Note      string `json:"note"`
	// Expected values: pending, processed, completed, cancelled. Not
	// enforced as a closed set.
	Status string `json:"status"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		AccountID: req.AccountID,
		BuyerName: req.BuyerName,
		Whatsapp:  req.Whatsapp,
		Note:      req.Note,
		Status:    req.Status,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"id": order.ID})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	status := c.QueryParam("status")

	orders, err := h.orderUseCase.ListOrders(c.Request().Context(), status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}
