package usecase

import (
	"context"

	"mlbbstore/internal/domain/entity"
	"mlbbstore/internal/domain/repository"
	"mlbbstore/pkg/errors"
	"mlbbstore/pkg/logger"
)

type AccountUseCase struct {
	accountRepo repository.AccountRepository
}

func NewAccountUseCase(accountRepo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
	}
}

type CreateAccountInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rank        string   `json:"rank"`
	Price       float64  `json:"price"`
	HeroCount   *int     `json:"hero_count"`
	SkinCount   *int     `json:"skin_count"`
	LoginMethod string   `json:"login_method"`
	EmailAccess bool     `json:"email_access"`
	Images      []string `json:"images"`
}

type ListAccountsInput struct {
	Query    string
	Rank     string
	MinPrice *float64
	MaxPrice *float64
}

func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.Account, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}
	if input.Rank == "" {
		return nil, errors.BadRequest("Rank is required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}
	if input.HeroCount != nil && *input.HeroCount < 0 {
		return nil, errors.BadRequest("Hero count must not be negative", nil)
	}
	if input.SkinCount != nil && *input.SkinCount < 0 {
		return nil, errors.BadRequest("Skin count must not be negative", nil)
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	account := &entity.Account{
		Title:       input.Title,
		Description: input.Description,
		Rank:        input.Rank,
		Price:       input.Price,
		HeroCount:   input.HeroCount,
		SkinCount:   input.SkinCount,
		LoginMethod: input.LoginMethod,
		EmailAccess: input.EmailAccess,
		Images:      images,
		IsAvailable: true,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("Account created: id=%s rank=%s price=%.0f", account.ID, account.Rank, account.Price)

	return account, nil
}

func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*entity.Account, error) {
	filter := repository.AccountFilter{
		Query:    input.Query,
		Rank:     input.Rank,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}

	return uc.accountRepo.List(ctx, filter)
}

func (uc *AccountUseCase) GetAccountByID(ctx context.Context, id string) (*entity.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}
