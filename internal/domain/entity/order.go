package entity

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusProcessed = "processed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a buyer's request to purchase one account. The status values
// above are the expected lifecycle but are not enforced as a closed set.
type Order struct {
	ID        string    `json:"id" firestore:"id"`
	AccountID string    `json:"account_id" firestore:"accountId"`
	BuyerName string    `json:"buyer_name" firestore:"buyerName"`
	Whatsapp  string    `json:"whatsapp" firestore:"whatsapp"`
	Note      string    `json:"note,omitempty" firestore:"note"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
