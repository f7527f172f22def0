package repository

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"mlbbstore/internal/domain/entity"
	"mlbbstore/internal/domain/repository"
	"mlbbstore/pkg/errors"
)

// MemoryAccountRepository is an in-memory AccountRepository with the same
// error contract as the Firestore implementation. Used by the test suites.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]*entity.Account),
	}
}

func (r *MemoryAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	stored := *account
	r.accounts[account.ID] = &stored
	return nil
}

func (r *MemoryAccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	if !validDocID(id) {
		return nil, errors.InvalidID("Invalid account id", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, errors.NotFound("Account", nil)
	}

	copied := *account
	return &copied, nil
}

func (r *MemoryAccountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := []*entity.Account{}
	for _, account := range r.accounts {
		if !account.IsAvailable {
			continue
		}
		if filter.MinPrice != nil && account.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && account.Price > *filter.MaxPrice {
			continue
		}
		if !matchAccountFilter(account, filter) {
			continue
		}
		copied := *account
		accounts = append(accounts, &copied)
	}

	return accounts, nil
}

func (r *MemoryAccountRepository) Claim(ctx context.Context, id string) error {
	if !validDocID(id) {
		return errors.New("NOT_FOUND", "Account not available", http.StatusNotFound, nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok || !account.IsAvailable {
		return errors.New("NOT_FOUND", "Account not available", http.StatusNotFound, nil)
	}

	account.IsAvailable = false
	account.UpdatedAt = time.Now()
	return nil
}
