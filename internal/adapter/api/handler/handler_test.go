package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"mlbbstore/internal/adapter/api"
	"mlbbstore/internal/adapter/repository"
	"mlbbstore/internal/usecase"
)

type testEnv struct {
	echo           *echo.Echo
	accountRepo    *repository.MemoryAccountRepository
	orderRepo      *repository.MemoryOrderRepository
	accountHandler *AccountHandler
	orderHandler   *OrderHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	accountRepo := repository.NewMemoryAccountRepository()
	orderRepo := repository.NewMemoryOrderRepository()

	accountUseCase := usecase.NewAccountUseCase(accountRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, accountRepo)

	return &testEnv{
		echo:           e,
		accountRepo:    accountRepo,
		orderRepo:      orderRepo,
		accountHandler: NewAccountHandler(accountUseCase),
		orderHandler:   NewOrderHandler(orderUseCase),
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (env *testEnv) request(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	env := decode(t, rec)
	require.True(t, env.Success)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
