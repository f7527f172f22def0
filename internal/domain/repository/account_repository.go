package repository

import (
	"context"

	"mlbbstore/internal/domain/entity"
)

// AccountFilter is the conjunction of listing filters. Query matches the
// title case-insensitively as a substring; Rank matches case-insensitively
// but exact; MinPrice/MaxPrice are inclusive bounds.
type AccountFilter struct {
	Query    string
	Rank     string
	MinPrice *float64
	MaxPrice *float64
}

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	// List returns available accounts only (sold accounts are never listed).
	List(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)
	// Claim flips is_available to false only if it is currently true.
	// Returns a not-found error when the account is missing, the id is
	// malformed, or the account was already claimed.
	Claim(ctx context.Context, id string) error
}
