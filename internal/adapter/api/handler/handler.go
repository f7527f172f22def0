package handler

import (
	"mlbbstore/internal/usecase"
)

var (
	accountHandler *AccountHandler
	orderHandler   *OrderHandler
)

func Setup(
	accountUseCase *usecase.AccountUseCase,
	orderUseCase *usecase.OrderUseCase,
) {
	accountHandler = NewAccountHandler(accountUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
}

func GetAccountHandler() *AccountHandler {
	return accountHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}
