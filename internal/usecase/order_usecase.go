package usecase

import (
	"context"

	"mlbbstore/internal/domain/entity"
	"mlbbstore/internal/domain/repository"
	"mlbbstore/pkg/errors"
	"mlbbstore/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	accountRepo repository.AccountRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, accountRepo repository.AccountRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
	}
}

type CreateOrderInput struct {
	AccountID string `json:"account_id"`
	BuyerName string `json:"buyer_name"`
	Whatsapp  string `json:"whatsapp"`
	Note      string `json:"note"`
	Status    string `json:"status"`
}

// CreateOrder claims the referenced account before persisting the order.
// Claim is a conditional flip of is_available, so under concurrent orders
// for the same account at most one claim succeeds; the losers get the same
// not-found as a missing or already-sold account.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	if input.BuyerName == "" {
		return nil, errors.BadRequest("Buyer name is required", nil)
	}
	if input.Whatsapp == "" {
		return nil, errors.BadRequest("Whatsapp is required", nil)
	}

	status := input.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	if err := uc.accountRepo.Claim(ctx, input.AccountID); err != nil {
		return nil, err
	}

	order := &entity.Order{
		AccountID: input.AccountID,
		BuyerName: input.BuyerName,
		Whatsapp:  input.Whatsapp,
		Note:      input.Note,
		Status:    status,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// No rollback of the claim: the account stays unavailable and the
		// failure is surfaced as-is.
		logger.Error("Order persist failed after claiming account %s: %v", input.AccountID, err)
		return nil, err
	}

	logger.Info("Order created: id=%s account=%s", order.ID, order.AccountID)

	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, status string) ([]*entity.Order, error) {
	return uc.orderRepo.List(ctx, repository.OrderFilter{Status: status})
}
