package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"mlbbstore/internal/domain/entity"
	"mlbbstore/internal/domain/repository"
	"mlbbstore/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	// Generate ID if not provided
	if order.ID == "" {
		doc := r.client.Collection(orderCollection).NewDoc()
		order.ID = doc.ID
	}

	// Set timestamps
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.client.Collection(orderCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := r.client.Collection(orderCollection).Query

	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	orders := []*entity.Order{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}

		orders = append(orders, &order)
	}

	return orders, nil
}
