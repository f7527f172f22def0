package router

import (
	"github.com/labstack/echo/v4"

	"mlbbstore/internal/adapter/api/handler"
)

func SetupOrderRouter(e *echo.Echo) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/api/orders")
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListOrders)
}
