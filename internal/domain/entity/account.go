package entity

import (
	"time"
)

// Account is one Mobile Legends account listed for sale.
type Account struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description"`
	Rank        string    `json:"rank" firestore:"rank"`
	Price       float64   `json:"price" firestore:"price"`
	HeroCount   *int      `json:"hero_count,omitempty" firestore:"heroCount,omitempty"`
	SkinCount   *int      `json:"skin_count,omitempty" firestore:"skinCount,omitempty"`
	LoginMethod string    `json:"login_method,omitempty" firestore:"loginMethod"`
	EmailAccess bool      `json:"email_access" firestore:"emailAccess"`
	Images      []string  `json:"images" firestore:"images"`
	IsAvailable bool      `json:"is_available" firestore:"isAvailable"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
