package repository

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mlbbstore/internal/domain/entity"
	"mlbbstore/internal/domain/repository"
	"mlbbstore/pkg/errors"
)

type firestoreAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreAccountRepository(client *firestore.Client) repository.AccountRepository {
	return &firestoreAccountRepository{
		client: client,
	}
}

func (r *firestoreAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Generate ID if not provided
	if account.ID == "" {
		doc := r.client.Collection(accountCollection).NewDoc()
		account.ID = doc.ID
	}

	// Set timestamps
	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := r.client.Collection(accountCollection).Doc(account.ID).Set(ctx, account)
	if err != nil {
		return errors.Internal("Failed to create account", err)
	}

	return nil
}

func (r *firestoreAccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	if !validDocID(id) {
		return nil, errors.InvalidID("Invalid account id", nil)
	}

	doc, err := r.client.Collection(accountCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Account", err)
		}
		return nil, errors.Internal("Failed to get account", err)
	}

	var account entity.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, errors.Internal("Failed to parse account data", err)
	}

	return &account, nil
}

func (r *firestoreAccountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, error) {
	query := r.client.Collection(accountCollection).Query.Where("isAvailable", "==", true)

	if filter.MinPrice != nil {
		query = query.Where("price", ">=", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price", "<=", *filter.MaxPrice)
	}

	// Firestore has no case-insensitive or substring operators, so the
	// title search and rank match are narrowed in memory after the fetch.
	iter := query.Documents(ctx)
	defer iter.Stop()

	accounts := []*entity.Account{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate accounts", err)
		}

		var account entity.Account
		if err := doc.DataTo(&account); err != nil {
			return nil, errors.Internal("Failed to parse account data", err)
		}

		if matchAccountFilter(&account, filter) {
			accounts = append(accounts, &account)
		}
	}

	return accounts, nil
}

func (r *firestoreAccountRepository) Claim(ctx context.Context, id string) error {
	// A malformed id can never refer to a purchasable account.
	if !validDocID(id) {
		return errors.New("NOT_FOUND", "Account not available", http.StatusNotFound, nil)
	}

	docRef := r.client.Collection(accountCollection).Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var account entity.Account
		if err := doc.DataTo(&account); err != nil {
			return err
		}

		if !account.IsAvailable {
			return errors.New("NOT_FOUND", "Account not available", http.StatusNotFound, nil)
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "isAvailable", Value: false},
			{Path: "updatedAt", Value: time.Now()},
		})
	})

	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return err
		}
		if status.Code(err) == codes.NotFound {
			return errors.New("NOT_FOUND", "Account not available", http.StatusNotFound, err)
		}
		return errors.Internal("Failed to claim account", err)
	}

	return nil
}

// matchAccountFilter applies the filter conditions Firestore cannot express:
// case-insensitive substring on title, case-insensitive exact match on rank.
func matchAccountFilter(account *entity.Account, filter repository.AccountFilter) bool {
	if filter.Query != "" && !strings.Contains(strings.ToLower(account.Title), strings.ToLower(filter.Query)) {
		return false
	}
	if filter.Rank != "" && !strings.EqualFold(account.Rank, filter.Rank) {
		return false
	}
	return true
}
