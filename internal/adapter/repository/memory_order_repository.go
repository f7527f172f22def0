package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mlbbstore/internal/domain/entity"
	"mlbbstore/internal/domain/repository"
)

// MemoryOrderRepository is an in-memory OrderRepository used by the test
// suites.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]*entity.Order),
	}
}

func (r *MemoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *MemoryOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := []*entity.Order{}
	for _, order := range r.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		copied := *order
		orders = append(orders, &copied)
	}

	return orders, nil
}

// Len reports how many orders have been persisted.
func (r *MemoryOrderRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}
