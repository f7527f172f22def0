package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"mlbbstore/internal/usecase"
	"mlbbstore/pkg/errors"
	"mlbbstore/pkg/response"
)

type AccountHandler struct {
	accountUseCase *usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

type createAccountRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Rank        string   `json:"rank" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	HeroCount   *int     `json:"hero_count" validate:"omitempty,gte=0"`
	SkinCount   *int     `json:"skin_count" validate:"omitempty,gte=0"`
	LoginMethod string   `json:"login_method"`
	EmailAccess bool     `json:"email_access"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account, err := h.accountUseCase.CreateAccount(c.Request().Context(), usecase.CreateAccountInput{
		Title:       req.Title,
		Description: req.Description,
		Rank:        req.Rank,
		Price:       req.Price,
		HeroCount:   req.HeroCount,
		SkinCount:   req.SkinCount,
		LoginMethod: req.LoginMethod,
		EmailAccess: req.EmailAccess,
		Images:      req.Images,
	})

	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"id": account.ID})
}

func (h *AccountHandler) ListAccounts(c echo.Context) error {
	input := usecase.ListAccountsInput{
		Query: c.QueryParam("q"),
		Rank:  c.QueryParam("rank"),
	}

	if minPriceStr := c.QueryParam("min_price"); minPriceStr != "" {
		minPrice, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid min_price", err))
		}
		input.MinPrice = &minPrice
	}

	if maxPriceStr := c.QueryParam("max_price"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid max_price", err))
		}
		input.MaxPrice = &maxPrice
	}

	accounts, err := h.accountUseCase.ListAccounts(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, accounts)
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	id := c.Param("id")

	account, err := h.accountUseCase.GetAccountByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, account)
}
