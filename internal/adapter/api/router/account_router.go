package router

import (
	"github.com/labstack/echo/v4"

	"mlbbstore/internal/adapter/api/handler"
)

func SetupAccountRouter(e *echo.Echo) {
	accountHandler := handler.GetAccountHandler()

	accounts := e.Group("/api/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.ListAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
}
