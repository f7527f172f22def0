package router

import (
	"github.com/labstack/echo/v4"

	"mlbbstore/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()

	e.GET("/", healthHandler.Root)
	e.GET("/test", healthHandler.TestStore)
}
