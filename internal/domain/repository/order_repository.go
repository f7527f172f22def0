package repository

import (
	"context"

	"mlbbstore/internal/domain/entity"
)

type OrderFilter struct {
	Status string
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}
